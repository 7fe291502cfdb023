package playlistsvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ownerSummaryLookup là stage lookup chủ playlist rút gọn (fullname/username/avatar)
func ownerSummaryLookup() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{
					"fullname": 1,
					"username": 1,
					"avatar":   1,
				}},
			},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"owner": bson.M{"$arrayElemAt": bson.A{"$owner", 0}},
		}}},
	}
}

// UserPlaylistsPipeline dựng pipeline danh sách playlist của một user kèm chủ playlist
func UserPlaylistsPipeline(ownerID primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": ownerID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	return append(pipeline, ownerSummaryLookup()...)
}

// PlaylistDetailPipeline dựng pipeline chi tiết một playlist:
// chủ playlist rút gọn và danh sách video đã populate đầy đủ.
func PlaylistDetailPipeline(playlistID primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": playlistID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videos",
		}}},
	}
	return append(pipeline, ownerSummaryLookup()...)
}
