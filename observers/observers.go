// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package observers - apply accepted notifications to the deltas
//
// observers run only after every validator of a transaction passed,
// so an observer error means the validators and the state disagree
package observers

import (
	"github.com/bitmark-inc/hashlockd/balance"
	"github.com/bitmark-inc/hashlockd/lockinfo"
	"github.com/bitmark-inc/hashlockd/notification"
)

// Context - the writable state of one block
type Context struct {
	Height       uint64
	Locks        *lockinfo.Delta
	Balances     *balance.Delta
	Publications []notification.ProofPublication // sent once the block commits
}

// Observer - one state change
type Observer interface {
	Name() string
	Notify(n notification.Notification, context *Context) error
}

type funcObserver struct {
	name   string
	notify func(notification.Notification, *Context) error
}

func (o *funcObserver) Name() string {
	return o.name
}

func (o *funcObserver) Notify(n notification.Notification, context *Context) error {
	return o.notify(n, context)
}

// New - make an observer from a function
func New(name string, notify func(notification.Notification, *Context) error) Observer {
	return &funcObserver{
		name:   name,
		notify: notify,
	}
}

// Registry - observers keyed by notification type
type Registry struct {
	observers map[notification.Type][]Observer
}

// NewRegistry - empty registry
func NewRegistry() *Registry {
	return &Registry{
		observers: make(map[notification.Type][]Observer),
	}
}

// Add - append an observer for a notification type
func (r *Registry) Add(t notification.Type, o Observer) *Registry {
	r.observers[t] = append(r.observers[t], o)
	return r
}

// Notify - apply the notifications of one transaction in order
func (r *Registry) Notify(notifications []notification.Notification, context *Context) error {
	for _, n := range notifications {
		for _, o := range r.observers[n.Type()] {
			if err := o.Notify(n, context); nil != err {
				return err
			}
		}
	}
	return nil
}

// NewDefaultRegistry - observers for every notification type
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Add(notification.BalanceDebitType, NewBalanceDebitObserver())
	r.Add(notification.SecretLockType, NewSecretLockObserver())
	r.Add(notification.ProofSecretType, NewProofObserver())
	r.Add(notification.ProofPublicationType, NewProofPublicationObserver())
	return r
}
