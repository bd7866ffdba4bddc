package shader

import _ "embed"

// TerrainVertex is the per-vertex lit terrain vertex shader.
//
//go:embed glsl/terrain.vert
var TerrainVertex string

// TerrainFragment passes the interpolated vertex colour through.
//
//go:embed glsl/terrain.frag
var TerrainFragment string
