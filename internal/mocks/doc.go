// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout the
// application, facilitating consistent and DRY testing across the codebase.
// Instead of defining inline mocks in individual test files, these standardized
// mock implementations can be reused.
//
// Each mock follows the same pattern: a struct with one function field per
// interface method, used when set, with default response values otherwise.
//
//	mockSender := &mocks.MockMessageSender{
//	    SendFn: func(ctx context.Context, to, body string) (*twilio.SendResult, error) {
//	        return nil, errors.New("provider down")
//	    },
//	}
//
// Mocks cannot be used from in-package tests of a package they import;
// those tests define local fakes instead.
package mocks
