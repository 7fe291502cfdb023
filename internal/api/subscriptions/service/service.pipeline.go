package subsvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userSummaryLookup dựng stage lookup sang users cho một field,
// chỉ lấy các field hồ sơ công khai rồi làm phẳng bằng $arrayElemAt.
func userSummaryLookup(field string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   field,
			"foreignField": "_id",
			"as":           field,
			"pipeline": bson.A{
				bson.M{"$project": bson.M{
					"fullname": 1,
					"username": 1,
					"avatar":   1,
				}},
			},
		}}},
		{{Key: "$addFields", Value: bson.M{
			field: bson.M{"$arrayElemAt": bson.A{"$" + field, 0}},
		}}},
	}
}

// ChannelSubscribersPipeline dựng pipeline danh sách người đăng ký của một kênh
func ChannelSubscribersPipeline(channelID primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"channel": channelID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	return append(pipeline, userSummaryLookup("subscriber")...)
}

// SubscribedChannelsPipeline dựng pipeline danh sách kênh một user đã đăng ký
func SubscribedChannelsPipeline(subscriberID primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"subscriber": subscriberID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	return append(pipeline, userSummaryLookup("channel")...)
}
