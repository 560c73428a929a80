package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/crossforge/internal/target"
	"github.com/zclconf/go-cty/cty"
)

// hostEvalContext builds the evaluation context available to manifest
// expressions. Manifests can interpolate host facts, e.g.
//
//	base_dir = "out/${host.os}"
func hostEvalContext(host *target.Descriptor) *hcl.EvalContext {
	hostOS, hostArch, hostTarget := "unknown", "unknown", ""
	if host != nil {
		hostOS, hostArch, hostTarget = host.OS, host.Arch, host.ID
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"host": cty.ObjectVal(map[string]cty.Value{
				"os":     cty.StringVal(hostOS),
				"arch":   cty.StringVal(hostArch),
				"target": cty.StringVal(hostTarget),
			}),
		},
	}
}
