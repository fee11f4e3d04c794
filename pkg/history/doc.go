// Package history records validation runs so operators can see how a
// dictionary's consistency evolved over time. The SQLite store is the
// durable backend; the in-memory store backs tests and one-shot runs.
package history
