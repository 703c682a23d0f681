package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// litShader is the directional light + ambient program shared by every scene mesh.
// Locations are looked up once; SetShaderValue is skipped for uniforms the driver optimised out.
type litShader struct {
	shader           rl.Shader
	viewPos          int32
	lightDir         int32
	ambient          int32
	lightColor       int32
	lightIntensity   int32
	specularPower    int32
	specularStrength int32
}

func loadLitShader() litShader {
	sh := rl.LoadShaderFromMemory(litVS, litFS)
	return litShader{
		shader:           sh,
		viewPos:          rl.GetShaderLocation(sh, "viewPos"),
		lightDir:         rl.GetShaderLocation(sh, "lightDir"),
		ambient:          rl.GetShaderLocation(sh, "ambient"),
		lightColor:       rl.GetShaderLocation(sh, "lightColor"),
		lightIntensity:   rl.GetShaderLocation(sh, "lightIntensity"),
		specularPower:    rl.GetShaderLocation(sh, "specularPower"),
		specularStrength: rl.GetShaderLocation(sh, "specularStrength"),
	}
}

func (s litShader) valid() bool {
	return rl.IsShaderValid(s.shader)
}

// setLight uploads per-frame lighting (cgo-safe: local arrays).
func (s litShader) setLight(l frameLight) {
	if !s.valid() {
		return
	}
	viewPos := [3]float32{l.viewPos[0], l.viewPos[1], l.viewPos[2]}
	dir := [3]float32{l.dir[0], l.dir[1], l.dir[2]}
	amb := [4]float32{l.ambient[0], l.ambient[1], l.ambient[2], 1}
	col := [3]float32{l.color[0], l.color[1], l.color[2]}
	setVec(s.shader, s.viewPos, viewPos[:], rl.ShaderUniformVec3)
	setVec(s.shader, s.lightDir, dir[:], rl.ShaderUniformVec3)
	setVec(s.shader, s.ambient, amb[:], rl.ShaderUniformVec4)
	setVec(s.shader, s.lightColor, col[:], rl.ShaderUniformVec3)
	setVec(s.shader, s.lightIntensity, []float32{l.intensity}, rl.ShaderUniformFloat)
}

// setSurface uploads the per-material specular terms.
func (s litShader) setSurface(sf surface) {
	if !s.valid() {
		return
	}
	setVec(s.shader, s.specularPower, []float32{sf.specularPower}, rl.ShaderUniformFloat)
	setVec(s.shader, s.specularStrength, []float32{sf.specularStrength}, rl.ShaderUniformFloat)
}

func setVec(sh rl.Shader, loc int32, v []float32, typ rl.ShaderUniformDataType) {
	if loc < 0 {
		return
	}
	rl.SetShaderValue(sh, loc, v, typ)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)
