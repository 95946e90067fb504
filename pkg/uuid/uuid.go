// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered unique identifiers for catalog nodes.

It wraps the google/uuid library to specifically generate Version 7 values,
which keep the node index ordered by creation time.

Every node created or duplicated by the catalog receives a fresh value from [New].
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string. It panics only if the system entropy source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuid: failed to generate UUID: " + err.Error())
	}

	return id.String()
}
