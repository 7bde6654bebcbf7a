package glrender

// One program serves every stitching technique: sample the bound texture,
// modulate by the material color. Filter and blend state vary per draw.

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aUV;

uniform mat4 uMVP;

out vec2 vUV;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vUV = aUV;
}
`

const fragmentShaderSource = `
#version 410 core

in vec2 vUV;

uniform sampler2D uTexture;
uniform vec4 uDiffColor;

out vec4 FragColor;

void main() {
	// Render-target UV flip: data row 0 is stored at the top of the texture.
	vec4 texel = texture(uTexture, vec2(vUV.x, 1.0 - vUV.y));
	FragColor = vec4(texel.rgb * uDiffColor.rgb, texel.a);
}
`
