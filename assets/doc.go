// Package assets loads scene graphs from files.
//
// Load picks a Reader by file extension. Two readers are registered by
// default:
//
//   - ".obj" reads Wavefront OBJ polygon meshes. Each object or group
//     becomes one engine.Geometry; polygons are triangulated as fans and
//     the "v x y z r g b" vertex-color extension sets the geometry color.
//   - ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff" and ".webp"
//     read raster images and build a flat quad in the XZ plane, one unit
//     high and as wide as the image aspect, made of colored cells that
//     approximate the picture.
//
// Relative names are resolved against the working directory and then the
// search path from Config. When Config.Cache is set, converted images are
// written there as OBJ files and reused on the next load.
//
// The environment variables VSG_FILE_PATH and VSG_FILE_CACHE fill Config:
//
//	cfg, err := assets.LoadConfig()
//	scene, err := assets.Load("model.obj", cfg)
package assets
