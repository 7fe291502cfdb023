package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	update, err := ToUpdateData(bson.M{"title": "mới", "views": int64(5)})
	assert.NoError(t, err)
	assert.Equal(t, "mới", update.Set["title"])
	assert.Nil(t, update.Unset)
	assert.Nil(t, update.Push)
}

func TestToUpdateData_OperatorMapKeptAsIs(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$set":   bson.M{"fullname": "Tester"},
		"$unset": bson.M{"otp": ""},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Tester", update.Set["fullname"])
	assert.Contains(t, update.Unset, "otp")
	// Field ngoài operator không được lẫn vào Set
	assert.NotContains(t, update.Set, "$unset")
}

func TestToUpdateData_UpdateDataPassThrough(t *testing.T) {
	src := &UpdateData{
		Pull: map[string]interface{}{"videos": "x"},
	}
	update, err := ToUpdateData(src)
	assert.NoError(t, err)
	assert.Same(t, src, update)

	byValue, err := ToUpdateData(UpdateData{
		AddToSet: map[string]interface{}{"videos": "y"},
	})
	assert.NoError(t, err)
	assert.Contains(t, byValue.AddToSet, "videos")
}

func TestToUpdateData_Struct(t *testing.T) {
	type patch struct {
		Title       string `bson:"title,omitempty"`
		Description string `bson:"description,omitempty"`
	}
	update, err := ToUpdateData(patch{Title: "chỉ title"})
	assert.NoError(t, err)
	assert.Equal(t, "chỉ title", update.Set["title"])
	// omitempty: field rỗng không được đưa vào $set
	assert.NotContains(t, update.Set, "description")
}
