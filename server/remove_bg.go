package server

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"

	"github.com/chaos-io/cutout/keying"
	"github.com/chaos-io/cutout/util"
)

// RemoveBGRequest /remove-bg 的请求体。数值/布尔字段用指针区分
// "没传"和"传了零值"，没传的用 keying.DefaultOptions 补齐
type RemoveBGRequest struct {
	ImageURL string `json:"image_url" form:"image_url" binding:"required"`
	BgHex    string `json:"bg_hex" form:"bg_hex"`

	ColorTolerance *int  `json:"color_tolerance" form:"color_tolerance"`
	TwoStage       *bool `json:"two_stage" form:"two_stage"`
	SeedTolerance  *int  `json:"seed_tolerance" form:"seed_tolerance"`
	SmoothKeyView  *bool `json:"smooth_key_view" form:"smooth_key_view"`

	ErodePx     *int  `json:"erode_px" form:"erode_px"`
	RemoveHoles *bool `json:"remove_holes" form:"remove_holes"`
	MinHoleArea *int  `json:"min_hole_area" form:"min_hole_area"`

	CleanResidual    *bool `json:"clean_residual" form:"clean_residual"`
	ResidualBoostPct *int  `json:"residual_boost_pct" form:"residual_boost_pct"`
	ResidualEdgeOnly *bool `json:"residual_edge_only" form:"residual_edge_only"`
	EdgeExpandPct    *int  `json:"edge_expand_pct" form:"edge_expand_pct"`

	SoftenEdges     *bool `json:"soften_edges" form:"soften_edges"`
	SoftenRadius    *int  `json:"soften_radius" form:"soften_radius"`
	SoftenThreshold *bool `json:"soften_threshold" form:"soften_threshold"`
}

// Options 把请求落成一份不可变的 pipeline 配置
func (r *RemoveBGRequest) Options() (keying.Options, error) {
	opts := keying.DefaultOptions()

	if r.BgHex != "" {
		target, err := keying.ParseHexColor(r.BgHex)
		if err != nil {
			return keying.Options{}, err
		}
		opts.Target = target
	}

	setInt(&opts.Tolerance, r.ColorTolerance)
	setBool(&opts.TwoStage, r.TwoStage)
	setInt(&opts.SeedTolerance, r.SeedTolerance)
	setBool(&opts.SmoothKeyView, r.SmoothKeyView)
	setInt(&opts.ErodePx, r.ErodePx)
	setBool(&opts.RemoveHoles, r.RemoveHoles)
	setInt(&opts.MinHoleArea, r.MinHoleArea)
	setBool(&opts.CleanResidual, r.CleanResidual)
	setInt(&opts.ResidualBoostPct, r.ResidualBoostPct)
	setBool(&opts.ResidualEdgeOnly, r.ResidualEdgeOnly)
	setInt(&opts.EdgeExpandPct, r.EdgeExpandPct)
	setBool(&opts.SoftenEdges, r.SoftenEdges)
	setInt(&opts.SoftenRadius, r.SoftenRadius)
	setBool(&opts.SoftenThreshold, r.SoftenThreshold)

	return opts, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func (s *Server) handleRemoveBG(c *gin.Context) {
	var req RemoveBGRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.process(c, &req)
}

func (s *Server) process(c *gin.Context, req *RemoveBGRequest) {
	opts, err := req.Options()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.FetchTimeout)
	defer cancel()

	img, err := util.DownloadImage(ctx, s.cli, req.ImageURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// 先压尺寸再进 pipeline，兜住内存和耗时
	src := keying.ResizeWithinMax(keying.ToNRGBA(img), s.cfg.MaxSide)

	stop := util.Trace("keying pipeline")
	out, err := keying.Process(src, opts)
	stop()
	if err != nil {
		switch {
		case errors.Is(err, keying.ErrInvalidColorSpec), errors.Is(err, keying.ErrInvalidDimensions):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, keying.ErrImageTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.saveArtifact(buf.Bytes())

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// saveArtifact 调试用：把结果另存一份到 OutputDir，由 cron 定期清理
func (s *Server) saveArtifact(data []byte) {
	if s.cfg.OutputDir == "" {
		return
	}
	name := filepath.Join(s.cfg.OutputDir, ksuid.New().String()+"_cutout.png")
	if err := os.WriteFile(name, data, 0644); err != nil {
		slog.Warn("save artifact", "name", name, "error", err)
	}
}

func (s *Server) handleTestSubmit(c *gin.Context) {
	req := &RemoveBGRequest{
		ImageURL: strings.TrimSpace(c.PostForm("image_url")),
		BgHex:    c.DefaultPostForm("bg_hex", "#FFFFFF"),
	}
	if req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_url is required"})
		return
	}

	req.ColorTolerance = formInt(c, "color_tolerance")
	req.TwoStage = formBool(c, "two_stage")
	req.SeedTolerance = formInt(c, "seed_tolerance")
	req.SmoothKeyView = formBool(c, "smooth_key_view")
	req.ErodePx = formInt(c, "erode_px")
	req.RemoveHoles = formBool(c, "remove_holes")
	req.MinHoleArea = formInt(c, "min_hole_area")
	req.CleanResidual = formBool(c, "clean_residual")
	req.ResidualBoostPct = formInt(c, "residual_boost_pct")
	req.ResidualEdgeOnly = formBool(c, "residual_edge_only")
	req.EdgeExpandPct = formInt(c, "edge_expand_pct")
	req.SoftenEdges = formBool(c, "soften_edges")
	req.SoftenRadius = formInt(c, "soften_radius")
	req.SoftenThreshold = formBool(c, "soften_threshold")

	s.process(c, req)
}

func formInt(c *gin.Context, key string) *int {
	v := strings.TrimSpace(c.PostForm(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// formBool 表单复选框归一化：勾选时浏览器发 "on"，没勾选整个
// 字段缺席，缺席按 false 处理（而不是落回服务端默认值）
func formBool(c *gin.Context, key string) *bool {
	b := false
	if v, ok := c.GetPostForm(key); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "on", "yes":
			b = true
		}
	}
	return &b
}
