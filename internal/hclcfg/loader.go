package hclcfg

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hcldec"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// File holds the values read from a listener config file. A nil field means
// the attribute was not present; the CLI layer decides defaults and
// precedence.
type File struct {
	Port            *int
	LogLevel        *string
	LogFormat       *string
	HealthcheckPort *int
	ContractPolicy  *string
}

// listenerSpec describes the attributes of the `listener` block. All are
// optional; unknown attributes are rejected.
var listenerSpec = hcldec.ObjectSpec{
	"port":             &hcldec.AttrSpec{Name: "port", Type: cty.Number},
	"log_level":        &hcldec.AttrSpec{Name: "log_level", Type: cty.String},
	"log_format":       &hcldec.AttrSpec{Name: "log_format", Type: cty.String},
	"healthcheck_port": &hcldec.AttrSpec{Name: "healthcheck_port", Type: cty.Number},
	"contract_policy":  &hcldec.AttrSpec{Name: "contract_policy", Type: cty.String},
}

// Load parses the file at path and decodes its single, optional `listener`
// block. A file without a listener block yields an empty File.
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}

	content, diags := hclFile.Body.Content(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "listener"}},
	})
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", path, diags)
	}

	block, err := uniqueBlock(content.Blocks, "listener")
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if block == nil {
		return &File{}, nil
	}

	val, diags := hcldec.Decode(block.Body, listenerSpec, nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", path, diags)
	}

	var f File
	for _, attr := range []struct {
		name string
		dst  any
	}{
		{"port", &f.Port},
		{"log_level", &f.LogLevel},
		{"log_format", &f.LogFormat},
		{"healthcheck_port", &f.HealthcheckPort},
		{"contract_policy", &f.ContractPolicy},
	} {
		if err := fromAttr(val, attr.name, attr.dst); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	return &f, nil
}

// uniqueBlock finds at most one block of the given type in blocks.
func uniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, error) {
	var found *hcl.Block
	for _, block := range blocks {
		if block.Type != name {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("duplicate %q block; only one is allowed", name)
		}
		found = block
	}
	return found, nil
}

// fromAttr converts one attribute of the decoded object into a Go value.
// dst must be a pointer to a pointer (e.g. **int); a null attribute leaves
// it nil.
func fromAttr(obj cty.Value, name string, dst any) error {
	v := obj.GetAttr(name)
	if v.IsNull() {
		return nil
	}

	switch dst := dst.(type) {
	case **int:
		var n int
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		*dst = &n
	case **string:
		var s string
		if err := gocty.FromCtyValue(v, &s); err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		*dst = &s
	default:
		return fmt.Errorf("attribute %q: unsupported destination type %T", name, dst)
	}

	return nil
}
