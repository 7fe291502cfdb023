package usersvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Các builder trong file này là pure function: nhận tham số, trả về mongo.Pipeline,
// không side effect để có thể test từng stage.

// ChannelProfilePipeline dựng pipeline trang kênh theo username.
// Lookup hai chiều trên subscriptions: ai đăng ký kênh này (channel) và
// kênh này đăng ký ai (subscriber), đếm bằng $size và kiểm tra viewer bằng $in.
// viewerID nil ứng với request không đăng nhập (isSubscribed luôn false).
func ChannelProfilePipeline(username string, viewerID *primitive.ObjectID) mongo.Pipeline {
	viewer := primitive.NilObjectID
	if viewerID != nil {
		viewer = *viewerID
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"username": username}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "subscriptions",
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "subscriptions",
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribedChannels",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"subscriberCount": bson.M{"$size": "$subscribers"},
			"subscribedCount": bson.M{"$size": "$subscribedChannels"},
			"isSubscribed": bson.M{
				"$in": bson.A{viewer, "$subscribers.subscriber"},
			},
		}}},
		{{Key: "$project", Value: bson.M{
			"fullname":        1,
			"username":        1,
			"email":           1,
			"avatar":          1,
			"coverImage":      1,
			"subscriberCount": 1,
			"subscribedCount": 1,
			"isSubscribed":    1,
		}}},
	}
}

// WatchHistoryPipeline dựng pipeline lịch sử xem của một user:
// lookup các video trong watchHistory, trong mỗi video lookup tiếp owner
// (chỉ lấy fullname/username/avatar) và làm phẳng bằng $arrayElemAt.
func WatchHistoryPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "watchHistory",
			"foreignField": "_id",
			"as":           "watchHistory",
			"pipeline": bson.A{
				bson.M{"$lookup": bson.M{
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
				}},
				bson.M{"$addFields": bson.M{
					"owner": bson.M{"$arrayElemAt": bson.A{"$owner", 0}},
				}},
			},
		}}},
	}
}
