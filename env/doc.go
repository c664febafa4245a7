// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("HWMCP_CATALOG_SOURCE")

# Testing

The Reader interface allows injecting a mock in tests to avoid relying on
real environment variables. A generated mock is available in the mocks
sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("HWMCP_CATALOG_SOURCE").Return("test-value")

	result := myFunc(mock)

# Design

Production code accepts an env.Reader, while tests substitute the generated
mock. The logger and the catalog source resolver both take their environment
through this interface.
*/
package env
