package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleTestPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(testPageHTML))
}

const testPageHTML = `<html>
  <body style="font-family: Arial; max-width: 820px; margin: 40px auto; line-height: 1.4;">
    <h2>Background Remover Test</h2>
    <p>Paste an image URL (JPG/PNG). Choose the exact background key color you used in generation (e.g. #FFFFFF or #00FF00).</p>

    <form method="post" action="/test" style="padding:16px; border:1px solid #ddd; border-radius:10px;">
      <label><b>Image URL:</b></label><br/>
      <input name="image_url" style="width:100%; padding:10px;" placeholder="https://..."><br/><br/>

      <label><b>Background key color (HEX):</b></label><br/>
      <input name="bg_hex" style="width:220px; padding:10px;" value="#FFFFFF">
      <span style="margin-left:10px; color:#555;">Try #00FF00 if you generated a neon green background</span>
      <br/><br/>

      <label><b>Color tolerance:</b> (JPG: 45-65, PNG: 10-40)</label><br/>
      <input name="color_tolerance" type="number" value="55" min="0" max="255" style="width:120px; padding:10px;"><br/><br/>

      <label><b>Two-stage scan:</b></label>
      <input name="two_stage" type="checkbox">
      <span style="color:#555;">Strict border seeding, relaxed fill (JPG noise)</span><br/><br/>

      <label><b>Seed tolerance:</b> (two-stage only)</label><br/>
      <input name="seed_tolerance" type="number" value="24" min="0" max="255" style="width:120px; padding:10px;"><br/><br/>

      <label><b>Smooth key view:</b></label>
      <input name="smooth_key_view" type="checkbox">
      <span style="color:#555;">Pre-blur the matching view (output colors untouched)</span><br/><br/>

      <label><b>Erode edge (px):</b> (halo killer, try 1-2)</label><br/>
      <input name="erode_px" type="number" value="1" min="0" max="10" style="width:120px; padding:10px;"><br/><br/>

      <label><b>Remove enclosed holes:</b></label>
      <input name="remove_holes" type="checkbox" checked>
      <span style="color:#555;">Removes internal background pockets</span><br/><br/>

      <label><b>Min hole area (px):</b> (avoid removing tiny highlights, try 250-1000)</label><br/>
      <input name="min_hole_area" type="number" value="250" min="0" max="10000000" style="width:140px; padding:10px;"><br/><br/>

      <label><b>Clean residual spill:</b></label>
      <input name="clean_residual" type="checkbox">
      <span style="color:#555;">Removes leftover key-color pixels near edges</span><br/><br/>

      <label><b>Spill tolerance boost (%):</b></label><br/>
      <input name="residual_boost_pct" type="number" value="20" min="0" style="width:120px; padding:10px;"><br/><br/>

      <label><b>Edge-only cleanup:</b></label>
      <input name="residual_edge_only" type="checkbox" checked>
      <span style="color:#555;">Protects interior foreground that resembles the key color</span><br/><br/>

      <label><b>Edge expand (%):</b> (roughly one pixel per 10%)</label><br/>
      <input name="edge_expand_pct" type="number" value="20" min="0" style="width:120px; padding:10px;"><br/><br/>

      <label><b>Soften edges:</b></label>
      <input name="soften_edges" type="checkbox">
      <span style="color:#555;">Blur the alpha channel for anti-aliasing</span><br/><br/>

      <label><b>Soften radius (px):</b></label><br/>
      <input name="soften_radius" type="number" value="2" min="0" max="16" style="width:120px; padding:10px;"><br/><br/>

      <label><b>Re-threshold after soften:</b></label>
      <input name="soften_threshold" type="checkbox">
      <span style="color:#555;">Crisp 0/255 edge instead of a smooth gradient</span><br/><br/>

      <button type="submit" style="padding:12px 16px; font-weight:bold; cursor:pointer;">
        Generate Transparent PNG
      </button>
    </form>

    <p style="margin-top:16px; color:#666;">
      Tip: If a 1px outline remains, increase <b>Erode edge</b> to 2.
      If internal background spots remain, increase <b>Min hole area</b> slightly or keep <b>Remove enclosed holes</b> enabled.
    </p>
  </body>
</html>
`
