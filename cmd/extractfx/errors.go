package main

import "errors"

var (
	ErrSelfTestFailed      = errors.New("self test failed")
	ErrOutputIntoDirectory = errors.New("directory input rewrites files in place and takes no output argument")
)
