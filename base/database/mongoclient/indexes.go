package mongoclient

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/listingapi/base/log"
)

// IndexSpec is one index of a collection, keys in order
type IndexSpec struct {
	Collection string
	Keys       bson.D
	Unique     bool
}

// EnsureIndexes creates the missing indexes, existing ones are left untouched
func EnsureIndexes(ctx context.Context, c *Client, specs []IndexSpec) error {
	db := c.Database(c.DbName)
	for _, spec := range specs {
		model := mongo.IndexModel{
			Keys:    spec.Keys,
			Options: options.Index().SetUnique(spec.Unique),
		}
		name, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			log.Log().WithFields(log.Fields{
				"err":        err,
				"collection": spec.Collection,
				"keys":       spec.Keys,
			}).Error("CreateOne failed")
			return err
		}
		log.Log().WithFields(log.Fields{"collection": spec.Collection, "index": name}).Info("index ensured")
	}
	return nil
}
