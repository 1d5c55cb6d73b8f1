package database

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildListFilter(t *testing.T) {
	tests := []struct {
		name      string
		tag       string
		published string
		want      bson.M
	}{
		{"no params", "", "", bson.M{}},
		{"tag only", "go", "", bson.M{"tags": "go"}},
		{"published true", "", "true", bson.M{"published": true}},
		{"published false", "", "false", bson.M{"published": false}},
		{"published garbage is false", "", "banana", bson.M{"published": false}},
		{"both", "go", "true", bson.M{"tags": "go", "published": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildListFilter(tt.tag, tt.published)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildListFilter(%q, %q) = %v, want %v", tt.tag, tt.published, got, tt.want)
			}
		})
	}
}

func TestBuildListOptions(t *testing.T) {
	tests := []struct {
		name  string
		limit string
		want  int64
	}{
		{"absent defaults to 10", "", 10},
		{"unparsable defaults to 10", "abc", 10},
		{"parsed", "25", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := buildListOptions(tt.limit)
			if opts.Limit == nil || *opts.Limit != tt.want {
				t.Errorf("limit = %v, want %d", opts.Limit, tt.want)
			}
		})
	}

	opts := buildListOptions("")
	sort, ok := opts.Sort.(bson.D)
	if !ok || len(sort) != 1 || sort[0].Key != "createdAt" || sort[0].Value != -1 {
		t.Errorf("sort = %v, want createdAt descending", opts.Sort)
	}
}

func TestSearchPipeline(t *testing.T) {
	pipeline := searchPipeline("golang")

	if len(pipeline) != 4 {
		t.Fatalf("pipeline has %d stages, want 4", len(pipeline))
	}

	match := pipeline[0][0]
	if match.Key != "$match" {
		t.Fatalf("first stage is %q, want $match", match.Key)
	}
	or := match.Value.(bson.M)["$or"].([]bson.M)
	if len(or) != 2 {
		t.Fatalf("$or has %d branches, want 2", len(or))
	}
	title := or[0]["title"].(bson.M)
	if title["$regex"] != "golang" || title["$options"] != "i" {
		t.Errorf("title branch = %v, want case-insensitive regex on q", title)
	}
	content := or[1]["content"].(bson.M)
	if content["$regex"] != "golang" || content["$options"] != "i" {
		t.Errorf("content branch = %v, want case-insensitive regex on q", content)
	}

	if pipeline[1][0].Key != "$addFields" {
		t.Errorf("second stage is %q, want $addFields", pipeline[1][0].Key)
	}
	if _, ok := pipeline[1][0].Value.(bson.M)["engagement"]; !ok {
		t.Error("$addFields stage does not compute engagement")
	}

	if pipeline[2][0].Key != "$sort" {
		t.Errorf("third stage is %q, want $sort", pipeline[2][0].Key)
	}
	if pipeline[2][0].Value.(bson.M)["engagement"] != -1 {
		t.Error("sort is not descending by engagement")
	}

	if pipeline[3][0].Key != "$limit" || pipeline[3][0].Value != searchLimit {
		t.Errorf("fourth stage = %v: %v, want $limit %d", pipeline[3][0].Key, pipeline[3][0].Value, searchLimit)
	}
}

func TestStatsPipeline(t *testing.T) {
	pipeline := statsPipeline()

	if len(pipeline) != 2 {
		t.Fatalf("pipeline has %d stages, want 2", len(pipeline))
	}

	group := pipeline[0][0]
	if group.Key != "$group" {
		t.Fatalf("first stage is %q, want $group", group.Key)
	}
	fields := group.Value.(bson.M)
	if fields["_id"] != nil {
		t.Errorf("_id = %v, want nil (single group)", fields["_id"])
	}
	for _, field := range []string{"totalPosts", "totalLikes", "avgLikes", "publishedCount"} {
		if _, ok := fields[field]; !ok {
			t.Errorf("group stage is missing %s", field)
		}
	}

	if pipeline[1][0].Key != "$project" {
		t.Errorf("second stage is %q, want $project", pipeline[1][0].Key)
	}
}
