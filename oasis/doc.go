// Package oasis extrapolates sensor histories by repeated differences.
package oasis
