package commentsvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// VideoCommentsPipeline dựng pipeline danh sách bình luận của một video:
// bình luận mới nhất trước, phân trang bằng $skip/$limit, lookup chủ bình luận
// (chỉ lấy field công khai) và video (title/thumbnail), làm phẳng bằng $arrayElemAt.
func VideoCommentsPipeline(videoID primitive.ObjectID, page, limit int64) mongo.Pipeline {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"video": videoID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
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
		{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "video",
			"foreignField": "_id",
			"as":           "video",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{
					"title":     1,
					"thumbnail": 1,
				}},
			},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"owner": bson.M{"$arrayElemAt": bson.A{"$owner", 0}},
			"video": bson.M{"$arrayElemAt": bson.A{"$video", 0}},
		}}},
	}
}
