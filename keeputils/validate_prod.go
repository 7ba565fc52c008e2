//go:build !debug_keeper

package keeputils

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_keeper build tag is present
func DebugValidate(validatable Validatable) {
}
