package likesvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	likemodels "vidtube/internal/api/likes/models"
)

// LikedVideosPipeline dựng pipeline danh sách video mà user đã thích:
// $match các like loại video của user, $lookup video (kèm chủ video rút gọn),
// $unwind rồi $replaceRoot để trả thẳng về danh sách video.
func LikedVideosPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"likedBy":    userID,
			"targetType": likemodels.TargetVideo,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "target",
			"foreignField": "_id",
			"as":           "video",
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
		{{Key: "$unwind", Value: "$video"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
	}
}
