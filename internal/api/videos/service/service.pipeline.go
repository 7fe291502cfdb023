package videosvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	videodto "vidtube/internal/api/videos/dto"
	"vidtube/internal/utility"
)

// ownerLookupStages là các stage lookup chủ video dùng chung cho các pipeline:
// $lookup sang users, $unwind và project loại các field nhạy cảm của owner.
func ownerLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: "$owner"}},
		{{Key: "$project", Value: bson.M{
			"owner.password":     0,
			"owner.refreshToken": 0,
			"owner.otp":          0,
			"owner.otpExpires":   0,
			"owner.watchHistory": 0,
		}}},
	}
}

// ListMatchFilter dựng filter $match cho danh sách video từ query.
// Dùng chung cho pipeline và CountDocuments để hai phía luôn đếm cùng một tập.
func ListMatchFilter(q videodto.ListVideosQuery) bson.M {
	filter := bson.M{}
	if q.OwnerID != "" {
		if ownerID := utility.String2ObjectID(q.OwnerID); ownerID != primitive.NilObjectID {
			filter["owner"] = ownerID
		}
	}
	if q.Query != "" {
		// Khớp title không phân biệt hoa thường
		filter["title"] = bson.M{"$regex": q.Query, "$options": "i"}
	}
	return filter
}

// VideoListPipeline dựng pipeline danh sách video có phân trang:
// $match theo owner/title, $sort, $skip/$limit rồi lookup chủ video.
// Sort mặc định là createdAt giảm dần (video mới nhất trước).
func VideoListPipeline(q videodto.ListVideosQuery) mongo.Pipeline {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	sortOrder := -1
	if q.SortType == "asc" {
		sortOrder = 1
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: ListMatchFilter(q)}},
		{{Key: "$sort", Value: bson.D{{Key: sortBy, Value: sortOrder}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
	}
	return append(pipeline, ownerLookupStages()...)
}

// VideoByIDPipeline dựng pipeline lấy một video theo id kèm chủ video
func VideoByIDPipeline(videoID primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": videoID}}},
	}
	return append(pipeline, ownerLookupStages()...)
}
