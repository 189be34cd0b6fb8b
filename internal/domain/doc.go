// Package domain holds the task dependency graph and the level sorter.
//
// A TaskSet is built from "DEPENDENCY->TASK" pairs. Sort assigns every task a
// depth (0 for tasks without dependencies, otherwise one more than the deepest
// dependency) and returns the tasks grouped by depth, each group sorted by name.
package domain
