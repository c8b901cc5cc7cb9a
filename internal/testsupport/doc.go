// Package testsupport provides fixtures shared by package tests: a default
// configuration rooted in temp directories and helpers that write content
// trees and config files to disk.
package testsupport
