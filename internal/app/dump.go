package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vk/crossforge/internal/project"
)

// dumpTask is the serialized form of one declared task, the record format
// consumed by the external task scheduler.
type dumpTask struct {
	Name           string   `json:"name"`
	Kind           string   `json:"kind"`
	Target         string   `json:"target,omitempty"`
	DestDir        string   `json:"dest_dir,omitempty"`
	BaseName       string   `json:"base_name,omitempty"`
	Group          string   `json:"group"`
	Description    string   `json:"description"`
	Deps           []string `json:"deps,omitempty"`
	Libraries      []string `json:"libraries,omitempty"`
	NoDefaultLibs  bool     `json:"no_default_libs,omitempty"`
	DumpParameters bool     `json:"dump_parameters,omitempty"`
	ExtraOpts      []string `json:"extra_opts,omitempty"`
}

// dump writes the declared task graph to the app's output writer in the
// configured format, in deterministic task-name order.
func (a *App) dump(proj *project.Project) error {
	g := proj.Graph()

	var records []dumpTask
	for _, t := range g.Tasks() {
		deps, err := g.Dependencies(t.Name)
		if err != nil {
			return err
		}
		deps = append(deps, t.ExtraDeps...)
		records = append(records, dumpTask{
			Name:           t.Name,
			Kind:           t.Kind.String(),
			Target:         t.TargetID,
			DestDir:        t.DestDir,
			BaseName:       t.BaseName,
			Group:          t.Group,
			Description:    t.Description,
			Deps:           deps,
			Libraries:      t.Libraries,
			NoDefaultLibs:  t.NoDefaultLibs,
			DumpParameters: t.DumpParameters,
			ExtraOpts:      t.ExtraOpts,
		})
	}

	if a.config.DumpFormat == "json" {
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	for _, r := range records {
		fmt.Fprintf(a.outW, "task %s (%s)\n", r.Name, r.Kind)
		if r.Target != "" {
			fmt.Fprintf(a.outW, "  target:      %s\n", r.Target)
		}
		if r.DestDir != "" {
			fmt.Fprintf(a.outW, "  output:      %s/%s\n", r.DestDir, r.BaseName)
		}
		fmt.Fprintf(a.outW, "  group:       %s\n", r.Group)
		fmt.Fprintf(a.outW, "  description: %s\n", r.Description)
		if len(r.Deps) > 0 {
			fmt.Fprintf(a.outW, "  deps:        %s\n", strings.Join(r.Deps, ", "))
		}
		if len(r.Libraries) > 0 {
			fmt.Fprintf(a.outW, "  libraries:   %s\n", strings.Join(r.Libraries, ", "))
		}
		if len(r.ExtraOpts) > 0 {
			fmt.Fprintf(a.outW, "  extra_opts:  %s\n", strings.Join(r.ExtraOpts, ", "))
		}
	}
	return nil
}
