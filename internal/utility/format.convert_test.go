package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	if got := String2ObjectID(id.Hex()); got != id {
		t.Errorf("String2ObjectID(%s) = %s", id.Hex(), got.Hex())
	}

	// Chuỗi không hợp lệ trả về NilObjectID
	if got := String2ObjectID("not-hex"); got != primitive.NilObjectID {
		t.Errorf("chuỗi không hợp lệ phải trả về NilObjectID, got %s", got.Hex())
	}
	if got := String2ObjectID(""); got != primitive.NilObjectID {
		t.Errorf("chuỗi rỗng phải trả về NilObjectID, got %s", got.Hex())
	}
}
