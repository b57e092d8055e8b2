package mongoclient

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

var (
	ErrNotFoundField = fmt.Errorf("not found field name")
	ErrEmptyPatch    = fmt.Errorf("nothing to patch")
)

// MakeBsonM flattens a tagged struct into bson.M. Nil pointers and zero
// values are left out, non nil pointers are dereferenced.
func MakeBsonM(patchable interface{}) (bson.M, error) {
	val := reflect.ValueOf(patchable)
	if val.Kind() == reflect.Ptr && val.Elem().Kind() == reflect.Struct {
		val = val.Elem()
	}

	bsonM := bson.M{}

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)

		if tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i)); err != nil {
			return nil, err
		} else if tag.Skip {
			continue
		} else if tag.OmitEmpty && field.IsZero() || !field.CanInterface() {
			continue
		} else if field.Kind() == reflect.Ptr && !field.IsNil() {
			bsonM[tag.Name] = reflect.Indirect(reflect.ValueOf(field.Interface())).Interface()
		} else if !field.IsZero() {
			bsonM[tag.Name] = field.Interface()
		}
	}

	return bsonM, nil
}

// MakeSetUpdate is MakeBsonM wrapped into a $set update, ErrEmptyPatch when nothing is set
func MakeSetUpdate(patchable interface{}) (bson.M, error) {
	m, err := MakeBsonM(patchable)
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, ErrEmptyPatch
	}
	return bson.M{"$set": m}, nil
}
