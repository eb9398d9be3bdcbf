package main

const vsSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	layout (location = 1) in uint aVertexLabel;
	layout (location = 2) in vec3 aVertexNormal;
	uniform mat4 uModelMatrix;
	uniform mat4 uViewMatrix;
	uniform mat4 uProjectionMatrix;
	uniform float uPointSizeBase;
	uniform vec3 uScreenSize;
	vec4 worldPosition;
	vec4 viewPosition;
	out vec3 vNormal;
	out vec3 vWorldPosition;
	out vec2 vUV;
	flat out uint vLabel;

	void main(void) {
		worldPosition = uModelMatrix * aVertexPosition;
		viewPosition = uViewMatrix * worldPosition;
		gl_Position = uProjectionMatrix * viewPosition;
		gl_PointSize = clamp(uPointSizeBase / length(viewPosition.xyz), 1.0, 64.0);

		vNormal = mat3(uModelMatrix) * aVertexNormal;
		vWorldPosition = worldPosition.xyz;
		vUV = vec2(
			aVertexPosition.x / uScreenSize.x + 0.5,
			0.5 - aVertexPosition.y / uScreenSize.y
		);
		vLabel = aVertexLabel;
	}
`

const fsSource = `#version 300 es
	precision mediump float;
	in vec3 vNormal;
	in vec3 vWorldPosition;
	in vec2 vUV;
	flat in uint vLabel;
	uniform vec3 uBodyColor;
	uniform vec3 uBodyMaterial;
	uniform vec3 uScreenColor;
	uniform vec3 uScreenMaterial;
	uniform int uHasTexture;
	uniform sampler2D uScreenTexture;
	uniform vec3 uLightDirection;
	uniform vec3 uLightColor;
	uniform float uAmbient;
	uniform vec3 uCameraPosition;
	out vec4 outColor;

	void main(void) {
		vec3 n = normalize(vNormal);
		vec3 l = normalize(uLightDirection);
		vec3 v = normalize(uCameraPosition - vWorldPosition);
		vec3 h = normalize(l + v);

		vec3 base;
		vec3 emissive = vec3(0.0);
		// x: roughness, y: metalness
		vec2 material;
		if (vLabel == 1u) {
			vec3 tex = vec3(0.02);
			if (uHasTexture == 1) {
				tex = texture(uScreenTexture, vUV).rgb;
			}
			base = uScreenColor * tex;
			emissive = tex * uScreenMaterial.z;
			material = uScreenMaterial.xy;
		} else if (vLabel == 2u) {
			base = vec3(0.05);
			material = vec2(0.2, 0.8);
		} else {
			base = uBodyColor;
			material = uBodyMaterial.xy;
		}

		float diffuse = max(dot(n, l), 0.0) * (1.0 - 0.5 * material.y);
		float shininess = mix(128.0, 4.0, material.x);
		float specular = pow(max(dot(n, h), 0.0), shininess) * mix(0.04, 1.0, material.y);
		outColor = vec4(
			base * (uAmbient + diffuse) * uLightColor + specular * uLightColor + emissive,
			1.0
		);
	}
`

const vsBackgroundSource = `#version 300 es
	layout (location = 0) in vec2 aPosition;
	out vec2 vUV;

	void main(void) {
		vUV = vec2(aPosition.x * 0.5 + 0.5, 0.5 - aPosition.y * 0.5);
		gl_Position = vec4(aPosition, 0.999, 1.0);
	}
`

const fsBackgroundSource = `#version 300 es
	precision mediump float;
	in vec2 vUV;
	uniform vec3 uStartColor;
	uniform vec3 uEndColor;
	// xy: direction in UV space with V pointing down, z: half extent
	uniform vec3 uDirection;
	out vec4 outColor;

	void main(void) {
		float t = dot(vUV - 0.5, uDirection.xy);
		if (uDirection.z > 0.0) {
			t = t / (2.0 * uDirection.z) + 0.5;
		}
		outColor = vec4(mix(uStartColor, uEndColor, clamp(t, 0.0, 1.0)), 1.0);
	}
`
