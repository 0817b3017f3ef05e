// Package patternfile loads training bitmaps and run settings from a text file.
//
// The file is read line by line, surrounding whitespace is ignored:
//
//	width=6
//	height=7
//	epsilon=0.5
//	laps=10
//	learnmode=online
//	activation_function=Logistic
//	numberOfRandomSamples=20
//	maxErrorsPerSample=2
//	presentOriginals=yes
//	mode=batch
//
//	name=c
//	..XXX.
//	.X...X
//	X.....
//	X.....
//	X.....
//	.X...X
//	..XXX.
//
// A line without '=' starts a bitmap of height rows, each exactly width
// characters long, X marks a set cell. The bitmap is labelled with the last
// name given before it. Settings apply to the bitmaps following them.
package patternfile
