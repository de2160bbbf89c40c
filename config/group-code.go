package config

// Group join-code generation settings
type GroupCodeConfig struct {
	Length      int // Number of characters in a generated code
	MaxAttempts int // Attempts before giving up on finding an unused code
}

var DefaultGroupCodeConfig = GroupCodeConfig{
	Length:      6,
	MaxAttempts: 5,
}
