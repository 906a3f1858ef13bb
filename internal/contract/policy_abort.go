//go:build !contract_log && !contract_assume

package contract

func defaultPolicy(violation string) {
	Abort(violation)
}
