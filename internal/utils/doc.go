// Package utils holds small HTTP helpers shared by the handler and the
// request pipeline.
package utils
