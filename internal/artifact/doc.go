// Package artifact is the orchestration core. A Config owns one named build
// artifact: at construction it resolves the declared targets, filters them
// through host enablement and kind support, creates and registers one build
// task per viable target, then wires the aggregate task (narrowed to the
// requested subset) and the optional host alias on top.
//
// Construction runs its four phases exactly once; afterwards only the
// configuration DSL may touch the tasks, and only non-structurally. All of
// it is single-threaded configuration-phase work, so the target→task mapping
// needs no locking.
package artifact
