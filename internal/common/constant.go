package common

const (
	// StorageKeyToken and StorageKeyUser are the fixed names under which the
	// session token and the cached profile are persisted locally.
	StorageKeyToken = "token"
	StorageKeyUser  = "user"

	// StorageKeyTheme holds the UI theme preference. It is unrelated to the
	// session and survives logout.
	StorageKeyTheme = "theme"
)
