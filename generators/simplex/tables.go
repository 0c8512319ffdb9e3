package simplex

// Base gradient directions. Tables are normalized per kernel in newGradients.

var gradients2DBase = []float64{
	0.38268343236509, 0.923879532511287, 0.923879532511287, 0.38268343236509, 0.923879532511287, -0.38268343236509, 0.38268343236509, -0.923879532511287,
	-0.38268343236509, -0.923879532511287, -0.923879532511287, -0.38268343236509, -0.923879532511287, 0.38268343236509, -0.38268343236509, 0.923879532511287,
	0.130526192220052, 0.99144486137381, 0.608761429008721, 0.793353340291235, 0.793353340291235, 0.608761429008721, 0.99144486137381, 0.130526192220051,
	0.99144486137381, -0.130526192220051, 0.793353340291235, -0.60876142900872, 0.608761429008721, -0.793353340291235, 0.130526192220052, -0.99144486137381,
	-0.130526192220052, -0.99144486137381, -0.608761429008721, -0.793353340291235, -0.793353340291235, -0.608761429008721, -0.99144486137381, -0.130526192220052,
	-0.99144486137381, 0.130526192220051, -0.793353340291235, 0.608761429008721, -0.608761429008721, 0.793353340291235, -0.130526192220052, 0.99144486137381,
}

var gradients3DBase = []float64{
	2.22474487139, 2.22474487139, -1, 2.22474487139, 2.22474487139, 1, 3.0862664687972017, 1.1721513422464978, 0, 1.1721513422464978, 3.0862664687972017, 0,
	-2.22474487139, 2.22474487139, -1, -2.22474487139, 2.22474487139, 1, -1.1721513422464978, 3.0862664687972017, 0, -3.0862664687972017, 1.1721513422464978, 0,
	-1, -2.22474487139, -2.22474487139, 1, -2.22474487139, -2.22474487139, 0, -3.0862664687972017, -1.1721513422464978, 0, -1.1721513422464978, -3.0862664687972017,
	-1, -2.22474487139, 2.22474487139, 1, -2.22474487139, 2.22474487139, 0, -1.1721513422464978, 3.0862664687972017, 0, -3.0862664687972017, 1.1721513422464978,
	-2.22474487139, -2.22474487139, -1, -2.22474487139, -2.22474487139, 1, -3.0862664687972017, -1.1721513422464978, 0, -1.1721513422464978, -3.0862664687972017, 0,
	-2.22474487139, -1, -2.22474487139, -2.22474487139, 1, -2.22474487139, -1.1721513422464978, 0, -3.0862664687972017, -3.0862664687972017, 0, -1.1721513422464978,
	-2.22474487139, -1, 2.22474487139, -2.22474487139, 1, 2.22474487139, -3.0862664687972017, 0, 1.1721513422464978, -1.1721513422464978, 0, 3.0862664687972017,
	-1, 2.22474487139, -2.22474487139, 1, 2.22474487139, -2.22474487139, 0, 1.1721513422464978, -3.0862664687972017, 0, 3.0862664687972017, -1.1721513422464978,
	-1, 2.22474487139, 2.22474487139, 1, 2.22474487139, 2.22474487139, 0, 3.0862664687972017, 1.1721513422464978, 0, 1.1721513422464978, 3.0862664687972017,
	2.22474487139, -2.22474487139, -1, 2.22474487139, -2.22474487139, 1, 1.1721513422464978, -3.0862664687972017, 0, 3.0862664687972017, -1.1721513422464978, 0,
	2.22474487139, -1, -2.22474487139, 2.22474487139, 1, -2.22474487139, 3.0862664687972017, 0, -1.1721513422464978, 1.1721513422464978, 0, -3.0862664687972017,
	2.22474487139, -1, 2.22474487139, 2.22474487139, 1, 2.22474487139, 1.1721513422464978, 0, 3.0862664687972017, 3.0862664687972017, 0, 1.1721513422464978,
}

var gradients4DBase = []float64{
	-0.6740059517812944, -0.3239847771997537, -0.3239847771997537, 0.5794684678643381,
	-0.7504883828755602, -0.4004672082940195, 0.15296486218853164, 0.5029860367700724,
	-0.7504883828755602, 0.15296486218853164, -0.4004672082940195, 0.5029860367700724,
	-0.8828161875373585, 0.08164729285680945, 0.08164729285680945, 0.4553054119602712,
	-0.4553054119602712, -0.08164729285680945, -0.08164729285680945, 0.8828161875373585,
	-0.5029860367700724, -0.15296486218853164, 0.4004672082940195, 0.7504883828755602,
	-0.5029860367700724, 0.4004672082940195, -0.15296486218853164, 0.7504883828755602,
	-0.5794684678643381, 0.3239847771997537, 0.3239847771997537, 0.6740059517812944,
	-0.6740059517812944, -0.3239847771997537, 0.5794684678643381, -0.3239847771997537,
	-0.7504883828755602, -0.4004672082940195, 0.5029860367700724, 0.15296486218853164,
	-0.7504883828755602, 0.15296486218853164, 0.5029860367700724, -0.4004672082940195,
	-0.8828161875373585, 0.08164729285680945, 0.4553054119602712, 0.08164729285680945,
	-0.4553054119602712, -0.08164729285680945, 0.8828161875373585, -0.08164729285680945,
	-0.5029860367700724, -0.15296486218853164, 0.7504883828755602, 0.4004672082940195,
	-0.5029860367700724, 0.4004672082940195, 0.7504883828755602, -0.15296486218853164,
	-0.5794684678643381, 0.3239847771997537, 0.6740059517812944, 0.3239847771997537,
	-0.6740059517812944, 0.5794684678643381, -0.3239847771997537, -0.3239847771997537,
	-0.7504883828755602, 0.5029860367700724, -0.4004672082940195, 0.15296486218853164,
	-0.7504883828755602, 0.5029860367700724, 0.15296486218853164, -0.4004672082940195,
	-0.8828161875373585, 0.4553054119602712, 0.08164729285680945, 0.08164729285680945,
	-0.4553054119602712, 0.8828161875373585, -0.08164729285680945, -0.08164729285680945,
	-0.5029860367700724, 0.7504883828755602, -0.15296486218853164, 0.4004672082940195,
	-0.5029860367700724, 0.7504883828755602, 0.4004672082940195, -0.15296486218853164,
	-0.5794684678643381, 0.6740059517812944, 0.3239847771997537, 0.3239847771997537,
	0.5794684678643381, -0.6740059517812944, -0.3239847771997537, -0.3239847771997537,
	0.5029860367700724, -0.7504883828755602, -0.4004672082940195, 0.15296486218853164,
	0.5029860367700724, -0.7504883828755602, 0.15296486218853164, -0.4004672082940195,
	0.4553054119602712, -0.8828161875373585, 0.08164729285680945, 0.08164729285680945,
	0.8828161875373585, -0.4553054119602712, -0.08164729285680945, -0.08164729285680945,
	0.7504883828755602, -0.5029860367700724, -0.15296486218853164, 0.4004672082940195,
	0.7504883828755602, -0.5029860367700724, 0.4004672082940195, -0.15296486218853164,
	0.6740059517812944, -0.5794684678643381, 0.3239847771997537, 0.3239847771997537,
	-0.753341017856078, -0.37968289875261624, -0.37968289875261624, -0.37968289875261624,
	-0.7821684431180708, -0.4321472685365301, -0.4321472685365301, 0.12128480194602098,
	-0.7821684431180708, -0.4321472685365301, 0.12128480194602098, -0.4321472685365301,
	-0.7821684431180708, 0.12128480194602098, -0.4321472685365301, -0.4321472685365301,
	-0.8586508742123365, -0.508629699630796, 0.044802370851755174, 0.044802370851755174,
	-0.8586508742123365, 0.044802370851755174, -0.508629699630796, 0.044802370851755174,
	-0.8586508742123365, 0.044802370851755174, 0.044802370851755174, -0.508629699630796,
	-0.9982828964265062, -0.03381941603233842, -0.03381941603233842, -0.03381941603233842,
	-0.37968289875261624, -0.753341017856078, -0.37968289875261624, -0.37968289875261624,
	-0.4321472685365301, -0.7821684431180708, -0.4321472685365301, 0.12128480194602098,
	-0.4321472685365301, -0.7821684431180708, 0.12128480194602098, -0.4321472685365301,
	0.12128480194602098, -0.7821684431180708, -0.4321472685365301, -0.4321472685365301,
	-0.508629699630796, -0.8586508742123365, 0.044802370851755174, 0.044802370851755174,
	0.044802370851755174, -0.8586508742123365, -0.508629699630796, 0.044802370851755174,
	0.044802370851755174, -0.8586508742123365, 0.044802370851755174, -0.508629699630796,
	-0.03381941603233842, -0.9982828964265062, -0.03381941603233842, -0.03381941603233842,
	-0.37968289875261624, -0.37968289875261624, -0.753341017856078, -0.37968289875261624,
	-0.4321472685365301, -0.4321472685365301, -0.7821684431180708, 0.12128480194602098,
	-0.4321472685365301, 0.12128480194602098, -0.7821684431180708, -0.4321472685365301,
	0.12128480194602098, -0.4321472685365301, -0.7821684431180708, -0.4321472685365301,
	-0.508629699630796, 0.044802370851755174, -0.8586508742123365, 0.044802370851755174,
	0.044802370851755174, -0.508629699630796, -0.8586508742123365, 0.044802370851755174,
	0.044802370851755174, 0.044802370851755174, -0.8586508742123365, -0.508629699630796,
	-0.03381941603233842, -0.03381941603233842, -0.9982828964265062, -0.03381941603233842,
	-0.37968289875261624, -0.37968289875261624, -0.37968289875261624, -0.753341017856078,
	-0.4321472685365301, -0.4321472685365301, 0.12128480194602098, -0.7821684431180708,
	-0.4321472685365301, 0.12128480194602098, -0.4321472685365301, -0.7821684431180708,
	0.12128480194602098, -0.4321472685365301, -0.4321472685365301, -0.7821684431180708,
	-0.508629699630796, 0.044802370851755174, 0.044802370851755174, -0.8586508742123365,
	0.044802370851755174, -0.508629699630796, 0.044802370851755174, -0.8586508742123365,
	0.044802370851755174, 0.044802370851755174, -0.508629699630796, -0.8586508742123365,
	-0.03381941603233842, -0.03381941603233842, -0.03381941603233842, -0.9982828964265062,
	-0.3239847771997537, -0.6740059517812944, -0.3239847771997537, 0.5794684678643381,
	-0.4004672082940195, -0.7504883828755602, 0.15296486218853164, 0.5029860367700724,
	0.15296486218853164, -0.7504883828755602, -0.4004672082940195, 0.5029860367700724,
	0.08164729285680945, -0.8828161875373585, 0.08164729285680945, 0.4553054119602712,
	-0.08164729285680945, -0.4553054119602712, -0.08164729285680945, 0.8828161875373585,
	-0.15296486218853164, -0.5029860367700724, 0.4004672082940195, 0.7504883828755602,
	0.4004672082940195, -0.5029860367700724, -0.15296486218853164, 0.7504883828755602,
	0.3239847771997537, -0.5794684678643381, 0.3239847771997537, 0.6740059517812944,
	-0.3239847771997537, -0.3239847771997537, -0.6740059517812944, 0.5794684678643381,
	-0.4004672082940195, 0.15296486218853164, -0.7504883828755602, 0.5029860367700724,
	0.15296486218853164, -0.4004672082940195, -0.7504883828755602, 0.5029860367700724,
	0.08164729285680945, 0.08164729285680945, -0.8828161875373585, 0.4553054119602712,
	-0.08164729285680945, -0.08164729285680945, -0.4553054119602712, 0.8828161875373585,
	-0.15296486218853164, 0.4004672082940195, -0.5029860367700724, 0.7504883828755602,
	0.4004672082940195, -0.15296486218853164, -0.5029860367700724, 0.7504883828755602,
	0.3239847771997537, 0.3239847771997537, -0.5794684678643381, 0.6740059517812944,
	-0.3239847771997537, -0.6740059517812944, 0.5794684678643381, -0.3239847771997537,
	-0.4004672082940195, -0.7504883828755602, 0.5029860367700724, 0.15296486218853164,
	0.15296486218853164, -0.7504883828755602, 0.5029860367700724, -0.4004672082940195,
	0.08164729285680945, -0.8828161875373585, 0.4553054119602712, 0.08164729285680945,
	-0.08164729285680945, -0.4553054119602712, 0.8828161875373585, -0.08164729285680945,
	-0.15296486218853164, -0.5029860367700724, 0.7504883828755602, 0.4004672082940195,
	0.4004672082940195, -0.5029860367700724, 0.7504883828755602, -0.15296486218853164,
	0.3239847771997537, -0.5794684678643381, 0.6740059517812944, 0.3239847771997537,
	-0.3239847771997537, -0.3239847771997537, 0.5794684678643381, -0.6740059517812944,
	-0.4004672082940195, 0.15296486218853164, 0.5029860367700724, -0.7504883828755602,
	0.15296486218853164, -0.4004672082940195, 0.5029860367700724, -0.7504883828755602,
	0.08164729285680945, 0.08164729285680945, 0.4553054119602712, -0.8828161875373585,
	-0.08164729285680945, -0.08164729285680945, 0.8828161875373585, -0.4553054119602712,
	-0.15296486218853164, 0.4004672082940195, 0.7504883828755602, -0.5029860367700724,
	0.4004672082940195, -0.15296486218853164, 0.7504883828755602, -0.5029860367700724,
	0.3239847771997537, 0.3239847771997537, 0.6740059517812944, -0.5794684678643381,
	-0.3239847771997537, 0.5794684678643381, -0.6740059517812944, -0.3239847771997537,
	-0.4004672082940195, 0.5029860367700724, -0.7504883828755602, 0.15296486218853164,
	0.15296486218853164, 0.5029860367700724, -0.7504883828755602, -0.4004672082940195,
	0.08164729285680945, 0.4553054119602712, -0.8828161875373585, 0.08164729285680945,
	-0.08164729285680945, 0.8828161875373585, -0.4553054119602712, -0.08164729285680945,
	-0.15296486218853164, 0.7504883828755602, -0.5029860367700724, 0.4004672082940195,
	0.4004672082940195, 0.7504883828755602, -0.5029860367700724, -0.15296486218853164,
	0.3239847771997537, 0.6740059517812944, -0.5794684678643381, 0.3239847771997537,
	-0.3239847771997537, 0.5794684678643381, -0.3239847771997537, -0.6740059517812944,
	-0.4004672082940195, 0.5029860367700724, 0.15296486218853164, -0.7504883828755602,
	0.15296486218853164, 0.5029860367700724, -0.4004672082940195, -0.7504883828755602,
	0.08164729285680945, 0.4553054119602712, 0.08164729285680945, -0.8828161875373585,
	-0.08164729285680945, 0.8828161875373585, -0.08164729285680945, -0.4553054119602712,
	-0.15296486218853164, 0.7504883828755602, 0.4004672082940195, -0.5029860367700724,
	0.4004672082940195, 0.7504883828755602, -0.15296486218853164, -0.5029860367700724,
	0.3239847771997537, 0.6740059517812944, 0.3239847771997537, -0.5794684678643381,
	0.5794684678643381, -0.3239847771997537, -0.6740059517812944, -0.3239847771997537,
	0.5029860367700724, -0.4004672082940195, -0.7504883828755602, 0.15296486218853164,
	0.5029860367700724, 0.15296486218853164, -0.7504883828755602, -0.4004672082940195,
	0.4553054119602712, 0.08164729285680945, -0.8828161875373585, 0.08164729285680945,
	0.8828161875373585, -0.08164729285680945, -0.4553054119602712, -0.08164729285680945,
	0.7504883828755602, -0.15296486218853164, -0.5029860367700724, 0.4004672082940195,
	0.7504883828755602, 0.4004672082940195, -0.5029860367700724, -0.15296486218853164,
	0.6740059517812944, 0.3239847771997537, -0.5794684678643381, 0.3239847771997537,
	0.5794684678643381, -0.3239847771997537, -0.3239847771997537, -0.6740059517812944,
	0.5029860367700724, -0.4004672082940195, 0.15296486218853164, -0.7504883828755602,
	0.5029860367700724, 0.15296486218853164, -0.4004672082940195, -0.7504883828755602,
	0.4553054119602712, 0.08164729285680945, 0.08164729285680945, -0.8828161875373585,
	0.8828161875373585, -0.08164729285680945, -0.08164729285680945, -0.4553054119602712,
	0.7504883828755602, -0.15296486218853164, 0.4004672082940195, -0.5029860367700724,
	0.7504883828755602, 0.4004672082940195, -0.15296486218853164, -0.5029860367700724,
	0.6740059517812944, 0.3239847771997537, 0.3239847771997537, -0.5794684678643381,
	0.03381941603233842, 0.03381941603233842, 0.03381941603233842, 0.9982828964265062,
	-0.044802370851755174, -0.044802370851755174, 0.508629699630796, 0.8586508742123365,
	-0.044802370851755174, 0.508629699630796, -0.044802370851755174, 0.8586508742123365,
	-0.12128480194602098, 0.4321472685365301, 0.4321472685365301, 0.7821684431180708,
	0.508629699630796, -0.044802370851755174, -0.044802370851755174, 0.8586508742123365,
	0.4321472685365301, -0.12128480194602098, 0.4321472685365301, 0.7821684431180708,
	0.4321472685365301, 0.4321472685365301, -0.12128480194602098, 0.7821684431180708,
	0.37968289875261624, 0.37968289875261624, 0.37968289875261624, 0.753341017856078,
	0.03381941603233842, 0.03381941603233842, 0.9982828964265062, 0.03381941603233842,
	-0.044802370851755174, 0.044802370851755174, 0.8586508742123365, 0.508629699630796,
	-0.044802370851755174, 0.508629699630796, 0.8586508742123365, -0.044802370851755174,
	-0.12128480194602098, 0.4321472685365301, 0.7821684431180708, 0.4321472685365301,
	0.508629699630796, -0.044802370851755174, 0.8586508742123365, -0.044802370851755174,
	0.4321472685365301, -0.12128480194602098, 0.7821684431180708, 0.4321472685365301,
	0.4321472685365301, 0.4321472685365301, 0.7821684431180708, -0.12128480194602098,
	0.37968289875261624, 0.37968289875261624, 0.753341017856078, 0.37968289875261624,
	0.03381941603233842, 0.9982828964265062, 0.03381941603233842, 0.03381941603233842,
	-0.044802370851755174, 0.8586508742123365, -0.044802370851755174, 0.508629699630796,
	-0.044802370851755174, 0.8586508742123365, 0.508629699630796, -0.044802370851755174,
	-0.12128480194602098, 0.7821684431180708, 0.4321472685365301, 0.4321472685365301,
	0.508629699630796, 0.8586508742123365, -0.044802370851755174, -0.044802370851755174,
	0.4321472685365301, 0.7821684431180708, -0.12128480194602098, 0.4321472685365301,
	0.4321472685365301, 0.7821684431180708, 0.4321472685365301, -0.12128480194602098,
	0.37968289875261624, 0.753341017856078, 0.37968289875261624, 0.37968289875261624,
	0.9982828964265062, 0.03381941603233842, 0.03381941603233842, 0.03381941603233842,
	0.8586508742123365, -0.044802370851755174, -0.044802370851755174, 0.508629699630796,
	0.8586508742123365, -0.044802370851755174, 0.508629699630796, -0.044802370851755174,
	0.7821684431180708, -0.12128480194602098, 0.4321472685365301, 0.4321472685365301,
	0.8586508742123365, 0.508629699630796, -0.044802370851755174, -0.044802370851755174,
	0.7821684431180708, 0.4321472685365301, -0.12128480194602098, 0.4321472685365301,
	0.7821684431180708, 0.4321472685365301, 0.4321472685365301, -0.12128480194602098,
	0.753341017856078, 0.37968289875261624, 0.37968289875261624, 0.37968289875261624,
}

// lookup4D lists, per quantized region of the 4D base cell, the vertex codes that can
// contribute. A code packs one offset in -1..2 per axis as two bits (x lowest).
var lookup4D = [256][]uint8{
	{0x15, 0x45, 0x51, 0x54, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x15, 0x45, 0x51, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x6A, 0x95, 0x96, 0x9A, 0xA6, 0xAA},
	{0x01, 0x05, 0x11, 0x15, 0x41, 0x45, 0x51, 0x55, 0x56, 0x5A, 0x66, 0x6A, 0x96, 0x9A, 0xA6, 0xAA},
	{0x01, 0x15, 0x16, 0x45, 0x46, 0x51, 0x52, 0x55, 0x56, 0x5A, 0x66, 0x6A, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x15, 0x45, 0x54, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x69, 0x6A, 0x95, 0x99, 0x9A, 0xA9, 0xAA},
	{0x05, 0x15, 0x45, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xAA},
	{0x05, 0x15, 0x45, 0x55, 0x56, 0x59, 0x5A, 0x66, 0x6A, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x05, 0x15, 0x16, 0x45, 0x46, 0x55, 0x56, 0x59, 0x5A, 0x66, 0x6A, 0x96, 0x9A, 0xAA, 0xAB},
	{0x04, 0x05, 0x14, 0x15, 0x44, 0x45, 0x54, 0x55, 0x59, 0x5A, 0x69, 0x6A, 0x99, 0x9A, 0xA9, 0xAA},
	{0x05, 0x15, 0x45, 0x55, 0x56, 0x59, 0x5A, 0x69, 0x6A, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x05, 0x15, 0x45, 0x55, 0x56, 0x59, 0x5A, 0x6A, 0x9A, 0xAA},
	{0x05, 0x15, 0x16, 0x45, 0x46, 0x55, 0x56, 0x59, 0x5A, 0x5B, 0x66, 0x6A, 0x6B, 0x96, 0x9A, 0x9B, 0xAA, 0xAB},
	{0x04, 0x15, 0x19, 0x45, 0x49, 0x54, 0x55, 0x58, 0x59, 0x5A, 0x69, 0x6A, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x05, 0x15, 0x19, 0x45, 0x49, 0x55, 0x56, 0x59, 0x5A, 0x69, 0x6A, 0x99, 0x9A, 0xAA, 0xAE},
	{0x05, 0x15, 0x19, 0x45, 0x49, 0x55, 0x56, 0x59, 0x5A, 0x5E, 0x69, 0x6A, 0x6E, 0x99, 0x9A, 0x9E, 0xAA, 0xAE},
	{0x05, 0x15, 0x1A, 0x45, 0x4A, 0x55, 0x56, 0x59, 0x5A, 0x5B, 0x5E, 0x6A, 0x9A, 0xAA, 0xAB, 0xAE, 0xAF},
	{0x15, 0x51, 0x54, 0x55, 0x56, 0x59, 0x65, 0x66, 0x69, 0x6A, 0x95, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x11, 0x15, 0x51, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x96, 0xA5, 0xA6, 0xAA},
	{0x11, 0x15, 0x51, 0x55, 0x56, 0x5A, 0x65, 0x66, 0x6A, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x11, 0x15, 0x16, 0x51, 0x52, 0x55, 0x56, 0x5A, 0x65, 0x66, 0x6A, 0x96, 0xA6, 0xAA, 0xAB},
	{0x14, 0x15, 0x54, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x99, 0xA5, 0xA9, 0xAA},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x9A, 0xA6, 0xA9, 0xAA},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x15, 0x16, 0x55, 0x56, 0x5A, 0x66, 0x6A, 0x6B, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x14, 0x15, 0x54, 0x55, 0x59, 0x5A, 0x65, 0x69, 0x6A, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x9A, 0xAA},
	{0x15, 0x16, 0x55, 0x56, 0x59, 0x5A, 0x66, 0x6A, 0x6B, 0x9A, 0xAA, 0xAB},
	{0x14, 0x15, 0x19, 0x54, 0x55, 0x58, 0x59, 0x5A, 0x65, 0x69, 0x6A, 0x99, 0xA9, 0xAA, 0xAE},
	{0x15, 0x19, 0x55, 0x59, 0x5A, 0x69, 0x6A, 0x6E, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x15, 0x19, 0x55, 0x56, 0x59, 0x5A, 0x69, 0x6A, 0x6E, 0x9A, 0xAA, 0xAE},
	{0x15, 0x16, 0x19, 0x1A, 0x55, 0x56, 0x59, 0x5A, 0x66, 0x69, 0x6A, 0x6B, 0x6E, 0x9A, 0xAA, 0xAB, 0xAE, 0xAF},
	{0x10, 0x11, 0x14, 0x15, 0x50, 0x51, 0x54, 0x55, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x11, 0x15, 0x51, 0x55, 0x56, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x11, 0x15, 0x51, 0x55, 0x56, 0x65, 0x66, 0x6A, 0xA6, 0xAA},
	{0x11, 0x15, 0x16, 0x51, 0x52, 0x55, 0x56, 0x5A, 0x65, 0x66, 0x67, 0x6A, 0x6B, 0x96, 0xA6, 0xA7, 0xAA, 0xAB},
	{0x14, 0x15, 0x54, 0x55, 0x59, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0xA6, 0xAA},
	{0x15, 0x16, 0x55, 0x56, 0x5A, 0x65, 0x66, 0x6A, 0x6B, 0xA6, 0xAA, 0xAB},
	{0x14, 0x15, 0x54, 0x55, 0x59, 0x65, 0x69, 0x6A, 0xA9, 0xAA},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0xA9, 0xAA},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0xAA},
	{0x15, 0x16, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x6B, 0xAA, 0xAB},
	{0x14, 0x15, 0x19, 0x54, 0x55, 0x58, 0x59, 0x5A, 0x65, 0x69, 0x6A, 0x6D, 0x6E, 0x99, 0xA9, 0xAA, 0xAD, 0xAE},
	{0x15, 0x19, 0x55, 0x59, 0x5A, 0x65, 0x69, 0x6A, 0x6E, 0xA9, 0xAA, 0xAE},
	{0x15, 0x19, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x6E, 0xAA, 0xAE},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x66, 0x69, 0x6A, 0x6B, 0x6E, 0x9A, 0xAA, 0xAB, 0xAE, 0xAF},
	{0x10, 0x15, 0x25, 0x51, 0x54, 0x55, 0x61, 0x64, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x11, 0x15, 0x25, 0x51, 0x55, 0x56, 0x61, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA6, 0xAA, 0xBA},
	{0x11, 0x15, 0x25, 0x51, 0x55, 0x56, 0x61, 0x65, 0x66, 0x69, 0x6A, 0x76, 0x7A, 0xA5, 0xA6, 0xAA, 0xB6, 0xBA},
	{0x11, 0x15, 0x26, 0x51, 0x55, 0x56, 0x62, 0x65, 0x66, 0x67, 0x6A, 0x76, 0xA6, 0xAA, 0xAB, 0xBA, 0xBB},
	{0x14, 0x15, 0x25, 0x54, 0x55, 0x59, 0x64, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA9, 0xAA, 0xBA},
	{0x15, 0x25, 0x55, 0x65, 0x66, 0x69, 0x6A, 0x7A, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x15, 0x25, 0x55, 0x56, 0x65, 0x66, 0x69, 0x6A, 0x7A, 0xA6, 0xAA, 0xBA},
	{0x15, 0x16, 0x25, 0x26, 0x55, 0x56, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x6B, 0x7A, 0xA6, 0xAA, 0xAB, 0xBA, 0xBB},
	{0x14, 0x15, 0x25, 0x54, 0x55, 0x59, 0x64, 0x65, 0x66, 0x69, 0x6A, 0x79, 0x7A, 0xA5, 0xA9, 0xAA, 0xB9, 0xBA},
	{0x15, 0x25, 0x55, 0x59, 0x65, 0x66, 0x69, 0x6A, 0x7A, 0xA9, 0xAA, 0xBA},
	{0x15, 0x25, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x7A, 0xAA, 0xBA},
	{0x15, 0x55, 0x56, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x6B, 0x7A, 0xA6, 0xAA, 0xAB, 0xBA, 0xBB},
	{0x14, 0x15, 0x29, 0x54, 0x55, 0x59, 0x65, 0x68, 0x69, 0x6A, 0x6D, 0x79, 0xA9, 0xAA, 0xAE, 0xBA, 0xBE},
	{0x15, 0x19, 0x25, 0x29, 0x55, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x6E, 0x7A, 0xA9, 0xAA, 0xAE, 0xBA, 0xBE},
	{0x15, 0x55, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x6E, 0x7A, 0xA9, 0xAA, 0xAE, 0xBA, 0xBE},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x6B, 0x6E, 0x7A, 0xAA, 0xAB, 0xAE, 0xBA, 0xBF},
	{0x45, 0x51, 0x54, 0x55, 0x56, 0x59, 0x65, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x41, 0x45, 0x51, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xAA},
	{0x41, 0x45, 0x51, 0x55, 0x56, 0x5A, 0x66, 0x6A, 0x95, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x41, 0x45, 0x46, 0x51, 0x52, 0x55, 0x56, 0x5A, 0x66, 0x95, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x44, 0x45, 0x54, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x69, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA9, 0xAA},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA6, 0xA9, 0xAA},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x66, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x45, 0x46, 0x55, 0x56, 0x5A, 0x66, 0x6A, 0x96, 0x9A, 0x9B, 0xA6, 0xAA, 0xAB},
	{0x44, 0x45, 0x54, 0x55, 0x59, 0x5A, 0x69, 0x6A, 0x95, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x69, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xAA},
	{0x45, 0x46, 0x55, 0x56, 0x59, 0x5A, 0x6A, 0x96, 0x9A, 0x9B, 0xAA, 0xAB},
	{0x44, 0x45, 0x49, 0x54, 0x55, 0x58, 0x59, 0x5A, 0x69, 0x95, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x45, 0x49, 0x55, 0x59, 0x5A, 0x69, 0x6A, 0x99, 0x9A, 0x9E, 0xA9, 0xAA, 0xAE},
	{0x45, 0x49, 0x55, 0x56, 0x59, 0x5A, 0x6A, 0x99, 0x9A, 0x9E, 0xAA, 0xAE},
	{0x45, 0x46, 0x49, 0x4A, 0x55, 0x56, 0x59, 0x5A, 0x6A, 0x96, 0x99, 0x9A, 0x9B, 0x9E, 0xAA, 0xAB, 0xAE, 0xAF},
	{0x50, 0x51, 0x54, 0x55, 0x56, 0x59, 0x65, 0x66, 0x69, 0x95, 0x96, 0x99, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x51, 0x55, 0x56, 0x59, 0x65, 0x66, 0x6A, 0x95, 0x96, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x51, 0x55, 0x56, 0x5A, 0x65, 0x66, 0x6A, 0x95, 0x96, 0x9A, 0xA5, 0xA6, 0xAA, 0xAB},
	{0x51, 0x52, 0x55, 0x56, 0x5A, 0x66, 0x6A, 0x96, 0x9A, 0xA6, 0xA7, 0xAA, 0xAB},
	{0x54, 0x55, 0x56, 0x59, 0x65, 0x69, 0x6A, 0x95, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x15, 0x45, 0x51, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x6A, 0x95, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x55, 0x56, 0x5A, 0x66, 0x6A, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x54, 0x55, 0x59, 0x5A, 0x65, 0x69, 0x6A, 0x95, 0x99, 0x9A, 0xA5, 0xA9, 0xAA, 0xAE},
	{0x15, 0x45, 0x54, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x69, 0x6A, 0x95, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x15, 0x45, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA6, 0xA9, 0xAA, 0xAB, 0xAE},
	{0x55, 0x56, 0x59, 0x5A, 0x66, 0x6A, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x54, 0x55, 0x58, 0x59, 0x5A, 0x69, 0x6A, 0x99, 0x9A, 0xA9, 0xAA, 0xAD, 0xAE},
	{0x55, 0x59, 0x5A, 0x69, 0x6A, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x55, 0x56, 0x59, 0x5A, 0x69, 0x6A, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x55, 0x56, 0x59, 0x5A, 0x6A, 0x9A, 0xAA, 0xAB, 0xAE, 0xAF},
	{0x50, 0x51, 0x54, 0x55, 0x65, 0x66, 0x69, 0x6A, 0x95, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x96, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x6A, 0x95, 0x96, 0xA5, 0xA6, 0xAA},
	{0x51, 0x52, 0x55, 0x56, 0x65, 0x66, 0x6A, 0x96, 0xA6, 0xA7, 0xAA, 0xAB},
	{0x54, 0x55, 0x59, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x99, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x15, 0x51, 0x54, 0x55, 0x56, 0x59, 0x65, 0x66, 0x69, 0x6A, 0x95, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x15, 0x51, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x96, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAB, 0xBA},
	{0x55, 0x56, 0x5A, 0x65, 0x66, 0x6A, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x6A, 0x95, 0x99, 0xA5, 0xA9, 0xAA},
	{0x15, 0x54, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAE, 0xBA},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x9A, 0xA6, 0xA9, 0xAA, 0xAB, 0xAE, 0xBA},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x54, 0x55, 0x58, 0x59, 0x65, 0x69, 0x6A, 0x99, 0xA9, 0xAA, 0xAD, 0xAE},
	{0x55, 0x59, 0x5A, 0x65, 0x69, 0x6A, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x9A, 0xAA, 0xAB, 0xAE, 0xAF},
	{0x50, 0x51, 0x54, 0x55, 0x61, 0x64, 0x65, 0x66, 0x69, 0x95, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x51, 0x55, 0x61, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA6, 0xA9, 0xAA, 0xB6, 0xBA},
	{0x51, 0x55, 0x56, 0x61, 0x65, 0x66, 0x6A, 0xA5, 0xA6, 0xAA, 0xB6, 0xBA},
	{0x51, 0x52, 0x55, 0x56, 0x61, 0x62, 0x65, 0x66, 0x6A, 0x96, 0xA5, 0xA6, 0xA7, 0xAA, 0xAB, 0xB6, 0xBA, 0xBB},
	{0x54, 0x55, 0x64, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA6, 0xA9, 0xAA, 0xB9, 0xBA},
	{0x55, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x55, 0x56, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x55, 0x56, 0x65, 0x66, 0x6A, 0xA6, 0xAA, 0xAB, 0xBA, 0xBB},
	{0x54, 0x55, 0x59, 0x64, 0x65, 0x69, 0x6A, 0xA5, 0xA9, 0xAA, 0xB9, 0xBA},
	{0x55, 0x59, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0xA6, 0xAA, 0xAB, 0xBA, 0xBB},
	{0x54, 0x55, 0x58, 0x59, 0x64, 0x65, 0x68, 0x69, 0x6A, 0x99, 0xA5, 0xA9, 0xAA, 0xAD, 0xAE, 0xB9, 0xBA, 0xBE},
	{0x55, 0x59, 0x65, 0x69, 0x6A, 0xA9, 0xAA, 0xAE, 0xBA, 0xBE},
	{0x15, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0xA9, 0xAA, 0xAE, 0xBA, 0xBE},
	{0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0xAA, 0xAB, 0xAE, 0xAF, 0xBA, 0xBB, 0xBE, 0xBF},
	{0x40, 0x41, 0x44, 0x45, 0x50, 0x51, 0x54, 0x55, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x41, 0x45, 0x51, 0x55, 0x56, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x41, 0x45, 0x51, 0x55, 0x56, 0x95, 0x96, 0x9A, 0xA6, 0xAA},
	{0x41, 0x45, 0x46, 0x51, 0x52, 0x55, 0x56, 0x5A, 0x66, 0x95, 0x96, 0x97, 0x9A, 0x9B, 0xA6, 0xA7, 0xAA, 0xAB},
	{0x44, 0x45, 0x54, 0x55, 0x59, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0xA6, 0xAA},
	{0x45, 0x46, 0x55, 0x56, 0x5A, 0x95, 0x96, 0x9A, 0x9B, 0xA6, 0xAA, 0xAB},
	{0x44, 0x45, 0x54, 0x55, 0x59, 0x95, 0x99, 0x9A, 0xA9, 0xAA},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0xA9, 0xAA},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0xAA},
	{0x45, 0x46, 0x55, 0x56, 0x59, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0x9B, 0xAA, 0xAB},
	{0x44, 0x45, 0x49, 0x54, 0x55, 0x58, 0x59, 0x5A, 0x69, 0x95, 0x99, 0x9A, 0x9D, 0x9E, 0xA9, 0xAA, 0xAD, 0xAE},
	{0x45, 0x49, 0x55, 0x59, 0x5A, 0x95, 0x99, 0x9A, 0x9E, 0xA9, 0xAA, 0xAE},
	{0x45, 0x49, 0x55, 0x56, 0x59, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0x9E, 0xAA, 0xAE},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x6A, 0x96, 0x99, 0x9A, 0x9B, 0x9E, 0xAA, 0xAB, 0xAE, 0xAF},
	{0x50, 0x51, 0x54, 0x55, 0x65, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x95, 0x96, 0x9A, 0xA5, 0xA6, 0xAA},
	{0x51, 0x52, 0x55, 0x56, 0x66, 0x95, 0x96, 0x9A, 0xA6, 0xA7, 0xAA, 0xAB},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x45, 0x51, 0x54, 0x55, 0x56, 0x59, 0x65, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x45, 0x51, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAB, 0xEA},
	{0x55, 0x56, 0x5A, 0x66, 0x6A, 0x95, 0x96, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x95, 0x99, 0x9A, 0xA5, 0xA9, 0xAA},
	{0x45, 0x54, 0x55, 0x56, 0x59, 0x5A, 0x65, 0x69, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAE, 0xEA},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA6, 0xA9, 0xAA, 0xAB, 0xAE, 0xEA},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x66, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA6, 0xAA, 0xAB},
	{0x54, 0x55, 0x58, 0x59, 0x69, 0x95, 0x99, 0x9A, 0xA9, 0xAA, 0xAD, 0xAE},
	{0x55, 0x59, 0x5A, 0x69, 0x6A, 0x95, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x69, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA9, 0xAA, 0xAE},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xAA, 0xAB, 0xAE, 0xAF},
	{0x50, 0x51, 0x54, 0x55, 0x65, 0x95, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x95, 0x96, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x95, 0x96, 0xA5, 0xA6, 0xAA},
	{0x51, 0x52, 0x55, 0x56, 0x65, 0x66, 0x95, 0x96, 0xA5, 0xA6, 0xA7, 0xAA, 0xAB},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x95, 0x99, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x51, 0x54, 0x55, 0x56, 0x59, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA, 0xEA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x6A, 0x95, 0x96, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAB, 0xBA, 0xEA},
	{0x51, 0x55, 0x56, 0x5A, 0x65, 0x66, 0x6A, 0x95, 0x96, 0x9A, 0xA5, 0xA6, 0xAA, 0xAB},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x95, 0x99, 0xA5, 0xA9, 0xAA},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x6A, 0x95, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAE, 0xBA, 0xEA},
	{0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA},
	{0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x6A, 0x95, 0x96, 0x9A, 0xA6, 0xA9, 0xAA, 0xAB},
	{0x54, 0x55, 0x58, 0x59, 0x65, 0x69, 0x95, 0x99, 0xA5, 0xA9, 0xAA, 0xAD, 0xAE},
	{0x54, 0x55, 0x59, 0x5A, 0x65, 0x69, 0x6A, 0x95, 0x99, 0x9A, 0xA5, 0xA9, 0xAA, 0xAE},
	{0x55, 0x56, 0x59, 0x5A, 0x65, 0x69, 0x6A, 0x95, 0x99, 0x9A, 0xA6, 0xA9, 0xAA, 0xAE},
	{0x55, 0x56, 0x59, 0x5A, 0x66, 0x69, 0x6A, 0x96, 0x99, 0x9A, 0xA6, 0xA9, 0xAA, 0xAB, 0xAE, 0xAF},
	{0x50, 0x51, 0x54, 0x55, 0x61, 0x64, 0x65, 0x66, 0x69, 0x95, 0xA5, 0xA6, 0xA9, 0xAA, 0xB5, 0xB6, 0xB9, 0xBA},
	{0x51, 0x55, 0x61, 0x65, 0x66, 0x95, 0xA5, 0xA6, 0xA9, 0xAA, 0xB6, 0xBA},
	{0x51, 0x55, 0x56, 0x61, 0x65, 0x66, 0x95, 0x96, 0xA5, 0xA6, 0xAA, 0xB6, 0xBA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x6A, 0x96, 0xA5, 0xA6, 0xA7, 0xAA, 0xAB, 0xB6, 0xBA, 0xBB},
	{0x54, 0x55, 0x64, 0x65, 0x69, 0x95, 0xA5, 0xA6, 0xA9, 0xAA, 0xB9, 0xBA},
	{0x55, 0x65, 0x66, 0x69, 0x6A, 0x95, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x96, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x6A, 0x95, 0x96, 0xA5, 0xA6, 0xAA, 0xAB, 0xBA, 0xBB},
	{0x54, 0x55, 0x59, 0x64, 0x65, 0x69, 0x95, 0x99, 0xA5, 0xA9, 0xAA, 0xB9, 0xBA},
	{0x54, 0x55, 0x59, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x99, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x55, 0x56, 0x59, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA},
	{0x55, 0x56, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x96, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAB, 0xBA, 0xBB},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x6A, 0x99, 0xA5, 0xA9, 0xAA, 0xAD, 0xAE, 0xB9, 0xBA, 0xBE},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x6A, 0x95, 0x99, 0xA5, 0xA9, 0xAA, 0xAE, 0xBA, 0xBE},
	{0x55, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAE, 0xBA, 0xBE},
	{0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x9A, 0xA6, 0xA9, 0xAA, 0xAB, 0xAE, 0xBA},
	{0x40, 0x45, 0x51, 0x54, 0x55, 0x85, 0x91, 0x94, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x41, 0x45, 0x51, 0x55, 0x56, 0x85, 0x91, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xAA, 0xEA},
	{0x41, 0x45, 0x51, 0x55, 0x56, 0x85, 0x91, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xAA, 0xD6, 0xDA, 0xE6, 0xEA},
	{0x41, 0x45, 0x51, 0x55, 0x56, 0x86, 0x92, 0x95, 0x96, 0x97, 0x9A, 0xA6, 0xAA, 0xAB, 0xD6, 0xEA, 0xEB},
	{0x44, 0x45, 0x54, 0x55, 0x59, 0x85, 0x94, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA9, 0xAA, 0xEA},
	{0x45, 0x55, 0x85, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xDA, 0xEA},
	{0x45, 0x55, 0x56, 0x85, 0x95, 0x96, 0x99, 0x9A, 0xA6, 0xAA, 0xDA, 0xEA},
	{0x45, 0x46, 0x55, 0x56, 0x5A, 0x85, 0x86, 0x95, 0x96, 0x99, 0x9A, 0x9B, 0xA6, 0xAA, 0xAB, 0xDA, 0xEA, 0xEB},
	{0x44, 0x45, 0x54, 0x55, 0x59, 0x85, 0x94, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA9, 0xAA, 0xD9, 0xDA, 0xE9, 0xEA},
	{0x45, 0x55, 0x59, 0x85, 0x95, 0x96, 0x99, 0x9A, 0xA9, 0xAA, 0xDA, 0xEA},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x85, 0x95, 0x96, 0x99, 0x9A, 0xAA, 0xDA, 0xEA},
	{0x45, 0x55, 0x56, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0x9B, 0xA6, 0xAA, 0xAB, 0xDA, 0xEA, 0xEB},
	{0x44, 0x45, 0x54, 0x55, 0x59, 0x89, 0x95, 0x98, 0x99, 0x9A, 0x9D, 0xA9, 0xAA, 0xAE, 0xD9, 0xEA, 0xEE},
	{0x45, 0x49, 0x55, 0x59, 0x5A, 0x85, 0x89, 0x95, 0x96, 0x99, 0x9A, 0x9E, 0xA9, 0xAA, 0xAE, 0xDA, 0xEA, 0xEE},
	{0x45, 0x55, 0x59, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0x9E, 0xA9, 0xAA, 0xAE, 0xDA, 0xEA, 0xEE},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0x9B, 0x9E, 0xAA, 0xAB, 0xAE, 0xDA, 0xEA, 0xEF},
	{0x50, 0x51, 0x54, 0x55, 0x65, 0x91, 0x94, 0x95, 0x96, 0x99, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x51, 0x55, 0x91, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xE6, 0xEA},
	{0x51, 0x55, 0x56, 0x91, 0x95, 0x96, 0x9A, 0xA5, 0xA6, 0xAA, 0xE6, 0xEA},
	{0x51, 0x52, 0x55, 0x56, 0x66, 0x91, 0x92, 0x95, 0x96, 0x9A, 0xA5, 0xA6, 0xA7, 0xAA, 0xAB, 0xE6, 0xEA, 0xEB},
	{0x54, 0x55, 0x94, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xE9, 0xEA},
	{0x55, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x55, 0x56, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x55, 0x56, 0x95, 0x96, 0x9A, 0xA6, 0xAA, 0xAB, 0xEA, 0xEB},
	{0x54, 0x55, 0x59, 0x94, 0x95, 0x99, 0x9A, 0xA5, 0xA9, 0xAA, 0xE9, 0xEA},
	{0x55, 0x59, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0xA6, 0xAA, 0xAB, 0xEA, 0xEB},
	{0x54, 0x55, 0x58, 0x59, 0x69, 0x94, 0x95, 0x98, 0x99, 0x9A, 0xA5, 0xA9, 0xAA, 0xAD, 0xAE, 0xE9, 0xEA, 0xEE},
	{0x55, 0x59, 0x95, 0x99, 0x9A, 0xA9, 0xAA, 0xAE, 0xEA, 0xEE},
	{0x45, 0x55, 0x56, 0x59, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0xA9, 0xAA, 0xAE, 0xEA, 0xEE},
	{0x55, 0x56, 0x59, 0x5A, 0x95, 0x96, 0x99, 0x9A, 0xAA, 0xAB, 0xAE, 0xAF, 0xEA, 0xEB, 0xEE, 0xEF},
	{0x50, 0x51, 0x54, 0x55, 0x65, 0x91, 0x94, 0x95, 0x96, 0x99, 0xA5, 0xA6, 0xA9, 0xAA, 0xE5, 0xE6, 0xE9, 0xEA},
	{0x51, 0x55, 0x65, 0x91, 0x95, 0x96, 0xA5, 0xA6, 0xA9, 0xAA, 0xE6, 0xEA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x91, 0x95, 0x96, 0xA5, 0xA6, 0xAA, 0xE6, 0xEA},
	{0x51, 0x55, 0x56, 0x66, 0x95, 0x96, 0x9A, 0xA5, 0xA6, 0xA7, 0xAA, 0xAB, 0xE6, 0xEA, 0xEB},
	{0x54, 0x55, 0x65, 0x94, 0x95, 0x99, 0xA5, 0xA6, 0xA9, 0xAA, 0xE9, 0xEA},
	{0x55, 0x65, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x95, 0x96, 0x9A, 0xA5, 0xA6, 0xAA, 0xAB, 0xEA, 0xEB},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x94, 0x95, 0x99, 0xA5, 0xA9, 0xAA, 0xE9, 0xEA},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x55, 0x56, 0x59, 0x65, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xEA},
	{0x55, 0x56, 0x5A, 0x66, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAB, 0xEA, 0xEB},
	{0x54, 0x55, 0x59, 0x69, 0x95, 0x99, 0x9A, 0xA5, 0xA9, 0xAA, 0xAD, 0xAE, 0xE9, 0xEA, 0xEE},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x95, 0x99, 0x9A, 0xA5, 0xA9, 0xAA, 0xAE, 0xEA, 0xEE},
	{0x55, 0x59, 0x5A, 0x69, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAE, 0xEA, 0xEE},
	{0x55, 0x56, 0x59, 0x5A, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA6, 0xA9, 0xAA, 0xAB, 0xAE, 0xEA},
	{0x50, 0x51, 0x54, 0x55, 0x65, 0x95, 0xA1, 0xA4, 0xA5, 0xA6, 0xA9, 0xAA, 0xB5, 0xBA, 0xE5, 0xEA, 0xFA},
	{0x51, 0x55, 0x61, 0x65, 0x66, 0x91, 0x95, 0x96, 0xA1, 0xA5, 0xA6, 0xA9, 0xAA, 0xB6, 0xBA, 0xE6, 0xEA, 0xFA},
	{0x51, 0x55, 0x65, 0x66, 0x95, 0x96, 0xA5, 0xA6, 0xA9, 0xAA, 0xB6, 0xBA, 0xE6, 0xEA, 0xFA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x95, 0x96, 0xA5, 0xA6, 0xA7, 0xAA, 0xAB, 0xB6, 0xBA, 0xE6, 0xEA, 0xFB},
	{0x54, 0x55, 0x64, 0x65, 0x69, 0x94, 0x95, 0x99, 0xA4, 0xA5, 0xA6, 0xA9, 0xAA, 0xB9, 0xBA, 0xE9, 0xEA, 0xFA},
	{0x55, 0x65, 0x95, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA, 0xEA, 0xFA},
	{0x51, 0x55, 0x56, 0x65, 0x66, 0x95, 0x96, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA, 0xEA, 0xFA},
	{0x55, 0x56, 0x65, 0x66, 0x95, 0x96, 0xA5, 0xA6, 0xAA, 0xAB, 0xBA, 0xBB, 0xEA, 0xEB, 0xFA, 0xFB},
	{0x54, 0x55, 0x65, 0x69, 0x95, 0x99, 0xA5, 0xA6, 0xA9, 0xAA, 0xB9, 0xBA, 0xE9, 0xEA, 0xFA},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x95, 0x99, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA, 0xEA, 0xFA},
	{0x55, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xBA, 0xEA, 0xFA},
	{0x55, 0x56, 0x65, 0x66, 0x6A, 0x95, 0x96, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAB, 0xBA, 0xEA},
	{0x54, 0x55, 0x59, 0x65, 0x69, 0x95, 0x99, 0xA5, 0xA9, 0xAA, 0xAD, 0xAE, 0xB9, 0xBA, 0xE9, 0xEA, 0xFE},
	{0x55, 0x59, 0x65, 0x69, 0x95, 0x99, 0xA5, 0xA9, 0xAA, 0xAE, 0xBA, 0xBE, 0xEA, 0xEE, 0xFA, 0xFE},
	{0x55, 0x59, 0x65, 0x69, 0x6A, 0x95, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAE, 0xBA, 0xEA},
	{0x55, 0x56, 0x59, 0x5A, 0x65, 0x66, 0x69, 0x6A, 0x95, 0x96, 0x99, 0x9A, 0xA5, 0xA6, 0xA9, 0xAA, 0xAB, 0xAE, 0xBA, 0xEA},
}
