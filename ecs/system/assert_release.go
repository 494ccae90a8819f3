//go:build !debug

package system

const debugAssertions = false
