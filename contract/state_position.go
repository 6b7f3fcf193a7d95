package main

import (
	tinyjson "github.com/CosmWasm/tinyjson"

	"launchpad/sdk"
)

// loadPosition fetches a position by its credential address, nil when absent.
// Absent means the deposit never happened or was already refunded.
func loadPosition(credential sdk.Address) *Position {
	ptr := sdk.StateGetObject(positionKey(credential))
	if ptr == nil {
		return nil
	}
	var p Position
	if err := tinyjson.Unmarshal([]byte(*ptr), &p); err != nil {
		sdk.Abort("corrupt position record")
	}
	return &p
}

// savePosition persists a position under its credential key.
func savePosition(p *Position) {
	blob, err := tinyjson.Marshal(p)
	if err != nil {
		sdk.Abort("could not encode position")
	}
	sdk.StateSetObject(positionKey(p.Credential), string(blob))
}

// deletePosition removes the record for good after a refund settles.
func deletePosition(credential sdk.Address) {
	sdk.StateDeleteObject(positionKey(credential))
}
