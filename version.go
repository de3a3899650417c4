package main

// Set through -ldflags "-X main.gitSHA1=..." at build time.
var (
	release  string = "0.1.0"
	gitSHA1  string = "unknown"
	gitDirty string = "unknown"
)
