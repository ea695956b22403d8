package unitwatch

// Version is the current version of the go-unitwatch library
const Version = "1.0.0"

// VersionInfo contains detailed version information
type VersionInfo struct {
	// Version is the semantic version
	Version string
	// Protocol is the manager interface this version talks to
	Protocol string
}

// GetVersion returns the current version information
func GetVersion() VersionInfo {
	return VersionInfo{
		Version:  Version,
		Protocol: ManagerInterface,
	}
}
