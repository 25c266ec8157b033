// Package task runs the scheduled background jobs: most importantly the
// daily verse prompt, which sends every active learner their current
// practice step by SMS at a fixed UTC hour.
package task
