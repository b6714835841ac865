// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

//go:build windows

package main

import "image"

func printGraphics(image.Image, uint) bool {
	return false
}
