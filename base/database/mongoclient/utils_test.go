package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/listingapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableListing struct {
		ImageUrl *string `bson:"imageUrl,omitempty"`
		PriceUsd *uint64 `bson:"priceUsd,omitempty"`
		IsActive *bool   `bson:"isActive,omitempty"`
		Owner    string  `bson:"owner"`
		Name     string  `bson:"name"`
		Ignored  string  `bson:"-"`
	}

	patchable := &PatchableListing{}
	patchable.ImageUrl = ptr.String("")
	patchable.IsActive = ptr.Bool(false)
	patchable.Name = "coffee"
	patchable.Ignored = "x"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"imageUrl": "",
			"isActive": false,
			// owner is empty and priceUsd is nil, so ignore
			"name": "coffee",
		},
		updater,
	)
}

func TestMakeSetUpdate(t *testing.T) {
	type patchable struct {
		State *string `bson:"state,omitempty"`
	}

	update, err := MakeSetUpdate(patchable{State: ptr.String("committed")})
	assert.NoError(t, err)
	assert.Equal(t, bson.M{"$set": bson.M{"state": "committed"}}, update)

	_, err = MakeSetUpdate(patchable{})
	assert.ErrorIs(t, err, ErrEmptyPatch)
}
