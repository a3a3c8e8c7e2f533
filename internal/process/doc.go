// Package process ties child processes to their parent's lifetime.
package process
