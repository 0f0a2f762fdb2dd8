// Package uniuri generates cryptographically secure random strings,
// used for the random part of server generated file names.
package uniuri
