package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cybershieldpro/backend/blog"
	"github.com/cybershieldpro/backend/utils"
)

// BlogController serves the file-based blog.
type BlogController struct {
	loader *blog.Loader
}

// NewBlogController creates a new BlogController instance.
func NewBlogController(loader *blog.Loader) *BlogController {
	return &BlogController{loader: loader}
}

// ListPosts returns all posts, newest first. Supports ?tag= and ?featured=true filters.
func (b *BlogController) ListPosts(ctx *gin.Context) {
	tag := strings.TrimSpace(ctx.Query("tag"))
	featured := ctx.Query("featured") == "true"

	var posts interface{}
	var err error
	switch {
	case tag != "":
		posts, err = b.loader.ListByTag(tag)
	case featured:
		posts, err = b.loader.ListFeatured()
	default:
		posts, err = b.loader.ListPosts()
	}
	if err != nil {
		utils.Sugar.Errorf("list posts: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to list posts")
		return
	}

	utils.Success(ctx, gin.H{"items": posts})
}

// GetPost returns a single post by slug.
func (b *BlogController) GetPost(ctx *gin.Context) {
	slug := strings.TrimSpace(ctx.Param("slug"))
	if slug == "" {
		utils.Error(ctx, http.StatusBadRequest, 40010, "missing slug")
		return
	}

	post, err := b.loader.GetPost(slug)
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40410, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to load post")
		return
	}

	utils.Success(ctx, gin.H{"post": post})
}
