// Package hclcfg loads the optional HCL configuration file accepted by the
// animals listener. The file carries setup-phase settings only; it never
// participates in the per-datagram data path.
package hclcfg
