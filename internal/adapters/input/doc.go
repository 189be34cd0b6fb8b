// Package input contains the PairReader adapters: "DEPENDENCY->TASK" text
// lines, JSON and YAML documents, files holding any of those, and an
// interactive terminal session.
package input
