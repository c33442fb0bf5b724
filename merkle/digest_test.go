// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashlockd/merkle"
)

func TestPrintOrder(t *testing.T) {
	d := merkle.Digest{0xf8, 0xb6, 0x16, 0x4d}
	s := fmt.Sprintf("%s", d)
	assert.Equal(t, 2*merkle.DigestLength, len(s), "hex length")
	assert.Equal(t, "4d16b6f8", s[len(s)-8:], "big endian print")
	assert.Equal(t, "<SHA3-256:"+s+">", fmt.Sprintf("%#v", d), "GoString")
}

func TestTextRoundTrip(t *testing.T) {
	d := merkle.NewDigest([]byte("hash lock"))
	text, err := d.MarshalText()
	assert.Nil(t, err, "marshal")

	var e merkle.Digest
	err = e.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, d, e, "digest changed")

	err = e.UnmarshalText(text[2:])
	assert.NotNil(t, err, "short text accepted")
}
