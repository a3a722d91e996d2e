// Package pixel implements the image type LCD previews are rendered into.
//
// LCD glass is dark-on-light: a driven segment shows dark, an idle segment shows
// the background. The [Glass] image stores one bit per pixel and is compatible
// with Go's native [color.Color] and [image.Image] / [draw.Image] interfaces.
package pixel
