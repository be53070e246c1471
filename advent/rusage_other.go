//go:build !unix

package main

func resourceUsage() (string, bool) { return "", false }
