// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validators

import (
	"github.com/bitmark-inc/hashlockd/balance"
	"github.com/bitmark-inc/hashlockd/lockinfo"
	"github.com/bitmark-inc/hashlockd/notification"
)

// Context - read-only state a notification is validated against
type Context struct {
	Height   uint64
	Locks    lockinfo.Reader
	Balances balance.Reader
}

// Validator - one acceptance check
type Validator interface {
	Name() string
	Validate(n notification.Notification, context *Context) Result
}

type funcValidator struct {
	name     string
	validate func(notification.Notification, *Context) Result
}

func (v *funcValidator) Name() string {
	return v.name
}

func (v *funcValidator) Validate(n notification.Notification, context *Context) Result {
	return v.validate(n, context)
}

// New - make a validator from a function
func New(name string, validate func(notification.Notification, *Context) Result) Validator {
	return &funcValidator{
		name:     name,
		validate: validate,
	}
}

// Registry - validators keyed by notification type
//
// not safe to modify once validation has started
type Registry struct {
	validators map[notification.Type][]Validator
}

// NewRegistry - empty registry
func NewRegistry() *Registry {
	return &Registry{
		validators: make(map[notification.Type][]Validator),
	}
}

// Add - append a validator for a notification type
func (r *Registry) Add(t notification.Type, v Validator) *Registry {
	r.validators[t] = append(r.validators[t], v)
	return r
}

// Names - validators registered for a type in run order
func (r *Registry) Names(t notification.Type) []string {
	names := make([]string, 0, len(r.validators[t]))
	for _, v := range r.validators[t] {
		names = append(names, v.Name())
	}
	return names
}

// ValidateOne - run every validator of one notification
func (r *Registry) ValidateOne(n notification.Notification, context *Context) Result {
	for _, v := range r.validators[n.Type()] {
		result := v.Validate(n, context)
		if !result.IsSuccess() {
			return result
		}
	}
	return Success
}

// Validate - run the notifications of one transaction in order,
// stopping at the first failure
func (r *Registry) Validate(notifications []notification.Notification, context *Context) Result {
	for _, n := range notifications {
		result := r.ValidateOne(n, context)
		if !result.IsSuccess() {
			return result
		}
	}
	return Success
}
