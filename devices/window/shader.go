package window

const vertex = `
#version 420

in  vec3 vertPos;
in  vec2 vertTexCoord;
out vec2 fragTexCoord;

void main() {
    fragTexCoord = vertTexCoord;
    gl_Position  = vec4(vertPos, 1);
}

`
const fragment = `
#version 420

layout (binding = 0) uniform sampler2D display;

in  vec2 fragTexCoord;
out vec4 outputColor;

void main() {
    // Pixel state is stored in the red channel: zero for off, non-zero
    // for on. Map it to a monochrome output color.
    float on = step(0.5 / 255.0, texture2D(display, fragTexCoord).r);
    outputColor = vec4(on, on, on, 1);
}
`
