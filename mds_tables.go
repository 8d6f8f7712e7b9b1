package rescue

import "github.com/umbra-defi/rescue/internal/fp"

// Precomputed Cauchy MDS matrices (and their inverses) for the two state
// widths this library actually constructs: m=5 (the cipher's KDF-derived
// key length) and m=12 (the default sponge's rate+capacity). Every entry is
// M[i][j] = 1/(i+j) for 1-indexed i,j, the same closed form
// buildCauchyMatrix computes generically for any other size; these tables
// exist purely to skip size^2 field inversions at Desc-construction time
// for the two sizes that matter in practice, mirroring the reference's own
// hardcoded mds_precomputed.hpp tables. Values were derived offline from
// that same formula and cross-checked by multiplying each matrix by its
// listed inverse and confirming the product is the identity.
var mds5Forward = [5][5]fp.U256{
	{fp.NewU256(0xfffffffffffffff7, 0xffffffffffffffff, 0xffffffffffffffff, 0x3fffffffffffffff), fp.NewU256(0x5555555555555549, 0x5555555555555555, 0x5555555555555555, 0x5555555555555555), fp.NewU256(0xfffffffffffffff2, 0xffffffffffffffff, 0xffffffffffffffff, 0x5fffffffffffffff), fp.NewU256(0x9999999999999996, 0x9999999999999999, 0x9999999999999999, 0x1999999999999999), fp.NewU256(0xaaaaaaaaaaaaaa9b, 0xaaaaaaaaaaaaaaaa, 0xaaaaaaaaaaaaaaaa, 0x6aaaaaaaaaaaaaaa)},
	{fp.NewU256(0x5555555555555549, 0x5555555555555555, 0x5555555555555555, 0x5555555555555555), fp.NewU256(0xfffffffffffffff2, 0xffffffffffffffff, 0xffffffffffffffff, 0x5fffffffffffffff), fp.NewU256(0x9999999999999996, 0x9999999999999999, 0x9999999999999999, 0x1999999999999999), fp.NewU256(0xaaaaaaaaaaaaaa9b, 0xaaaaaaaaaaaaaaaa, 0xaaaaaaaaaaaaaaaa, 0x6aaaaaaaaaaaaaaa), fp.NewU256(0x249249249249248d, 0x9249249249249249, 0x4924924924924924, 0x2492492492492492)},
	{fp.NewU256(0xfffffffffffffff2, 0xffffffffffffffff, 0xffffffffffffffff, 0x5fffffffffffffff), fp.NewU256(0x9999999999999996, 0x9999999999999999, 0x9999999999999999, 0x1999999999999999), fp.NewU256(0xaaaaaaaaaaaaaa9b, 0xaaaaaaaaaaaaaaaa, 0xaaaaaaaaaaaaaaaa, 0x6aaaaaaaaaaaaaaa), fp.NewU256(0x249249249249248d, 0x9249249249249249, 0x4924924924924924, 0x2492492492492492), fp.NewU256(0xfffffffffffffff9, 0xffffffffffffffff, 0xffffffffffffffff, 0x2fffffffffffffff)},
	{fp.NewU256(0x9999999999999996, 0x9999999999999999, 0x9999999999999999, 0x1999999999999999), fp.NewU256(0xaaaaaaaaaaaaaa9b, 0xaaaaaaaaaaaaaaaa, 0xaaaaaaaaaaaaaaaa, 0x6aaaaaaaaaaaaaaa), fp.NewU256(0x249249249249248d, 0x9249249249249249, 0x4924924924924924, 0x2492492492492492), fp.NewU256(0xfffffffffffffff9, 0xffffffffffffffff, 0xffffffffffffffff, 0x2fffffffffffffff), fp.NewU256(0xc71c71c71c71c712, 0x1c71c71c71c71c71, 0x71c71c71c71c71c7, 0x471c71c71c71c71c)},
	{fp.NewU256(0xaaaaaaaaaaaaaa9b, 0xaaaaaaaaaaaaaaaa, 0xaaaaaaaaaaaaaaaa, 0x6aaaaaaaaaaaaaaa), fp.NewU256(0x249249249249248d, 0x9249249249249249, 0x4924924924924924, 0x2492492492492492), fp.NewU256(0xfffffffffffffff9, 0xffffffffffffffff, 0xffffffffffffffff, 0x2fffffffffffffff), fp.NewU256(0xc71c71c71c71c712, 0x1c71c71c71c71c71, 0x71c71c71c71c71c7, 0x471c71c71c71c71c), fp.NewU256(0xcccccccccccccccb, 0xcccccccccccccccc, 0xcccccccccccccccc, 0x0ccccccccccccccc)},
}

var mds5Inverse = [5][5]fp.U256{
	{fp.NewU256(0x00000000000001c2, 0, 0, 0), fp.NewU256(0xffffffffffffef85, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000000000003138, 0, 0, 0), fp.NewU256(0xffffffffffffc4dd, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000000000000189c, 0, 0, 0)},
	{fp.NewU256(0xffffffffffffef85, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000000000000ac44, 0, 0, 0), fp.NewU256(0xfffffffffffdd8ad, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000000000002b110, 0, 0, 0), fp.NewU256(0xfffffffffffed89d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff)},
	{fp.NewU256(0x0000000000003138, 0, 0, 0), fp.NewU256(0xfffffffffffdd8ad, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000000000072d80, 0, 0, 0), fp.NewU256(0xfffffffffff6c56d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000000000040998, 0, 0, 0)},
	{fp.NewU256(0xffffffffffffc4dd, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000000000002b110, 0, 0, 0), fp.NewU256(0xfffffffffff6c56d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00000000000c1cc8, 0, 0, 0), fp.NewU256(0xfffffffffffa9dcd, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff)},
	{fp.NewU256(0x000000000000189c, 0, 0, 0), fp.NewU256(0xfffffffffffed89d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000000000040998, 0, 0, 0), fp.NewU256(0xfffffffffffa9dcd, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000000000026c28, 0, 0, 0)},
}

var mds12Forward = [12][12]fp.U256{
	{fp.NewU256(0xfffffffffffffff7, 0xffffffffffffffff, 0xffffffffffffffff, 0x3fffffffffffffff), fp.NewU256(0x5555555555555549, 0x5555555555555555, 0x5555555555555555, 0x5555555555555555), fp.NewU256(0xfffffffffffffff2, 0xffffffffffffffff, 0xffffffffffffffff, 0x5fffffffffffffff), fp.NewU256(0x9999999999999996, 0x9999999999999999, 0x9999999999999999, 0x1999999999999999), fp.NewU256(0xaaaaaaaaaaaaaa9b, 0xaaaaaaaaaaaaaaaa, 0xaaaaaaaaaaaaaaaa, 0x6aaaaaaaaaaaaaaa), fp.NewU256(0x249249249249248d, 0x9249249249249249, 0x4924924924924924, 0x2492492492492492), fp.NewU256(0xfffffffffffffff9, 0xffffffffffffffff, 0xffffffffffffffff, 0x2fffffffffffffff), fp.NewU256(0xc71c71c71c71c712, 0x1c71c71c71c71c71, 0x71c71c71c71c71c7, 0x471c71c71c71c71c), fp.NewU256(0xcccccccccccccccb, 0xcccccccccccccccc, 0xcccccccccccccccc, 0x0ccccccccccccccc), fp.NewU256(0xe8ba2e8ba2e8ba26, 0x2e8ba2e8ba2e8ba2, 0xa2e8ba2e8ba2e8ba, 0x3a2e8ba2e8ba2e8b), fp.NewU256(0x5555555555555544, 0x5555555555555555, 0x5555555555555555, 0x7555555555555555), fp.NewU256(0x3b13b13b13b13b0b, 0x13b13b13b13b13b1, 0xb13b13b13b13b13b, 0x3b13b13b13b13b13)},
	{fp.NewU256(0x5555555555555549, 0x5555555555555555, 0x5555555555555555, 0x5555555555555555), fp.NewU256(0xfffffffffffffff2, 0xffffffffffffffff, 0xffffffffffffffff, 0x5fffffffffffffff), fp.NewU256(0x9999999999999996, 0x9999999999999999, 0x9999999999999999, 0x1999999999999999), fp.NewU256(0xaaaaaaaaaaaaaa9b, 0xaaaaaaaaaaaaaaaa, 0xaaaaaaaaaaaaaaaa, 0x6aaaaaaaaaaaaaaa), fp.NewU256(0x249249249249248d, 0x9249249249249249, 0x4924924924924924, 0x2492492492492492), fp.NewU256(0xfffffffffffffff9, 0xffffffffffffffff, 0xffffffffffffffff, 0x2fffffffffffffff), fp.NewU256(0xc71c71c71c71c712, 0x1c71c71c71c71c71, 0x71c71c71c71c71c7, 0x471c71c71c71c71c), fp.NewU256(0xcccccccccccccccb, 0xcccccccccccccccc, 0xcccccccccccccccc, 0x0ccccccccccccccc), fp.NewU256(0xe8ba2e8ba2e8ba26, 0x2e8ba2e8ba2e8ba2, 0xa2e8ba2e8ba2e8ba, 0x3a2e8ba2e8ba2e8b), fp.NewU256(0x5555555555555544, 0x5555555555555555, 0x5555555555555555, 0x7555555555555555), fp.NewU256(0x3b13b13b13b13b0b, 0x13b13b13b13b13b1, 0xb13b13b13b13b13b, 0x3b13b13b13b13b13), fp.NewU256(0x924924924924923d, 0x4924924924924924, 0x2492492492492492, 0x5249249249249249)},
	{fp.NewU256(0xfffffffffffffff2, 0xffffffffffffffff, 0xffffffffffffffff, 0x5fffffffffffffff), fp.NewU256(0x9999999999999996, 0x9999999999999999, 0x9999999999999999, 0x1999999999999999), fp.NewU256(0xaaaaaaaaaaaaaa9b, 0xaaaaaaaaaaaaaaaa, 0xaaaaaaaaaaaaaaaa, 0x6aaaaaaaaaaaaaaa), fp.NewU256(0x249249249249248d, 0x9249249249249249, 0x4924924924924924, 0x2492492492492492), fp.NewU256(0xfffffffffffffff9, 0xffffffffffffffff, 0xffffffffffffffff, 0x2fffffffffffffff), fp.NewU256(0xc71c71c71c71c712, 0x1c71c71c71c71c71, 0x71c71c71c71c71c7, 0x471c71c71c71c71c), fp.NewU256(0xcccccccccccccccb, 0xcccccccccccccccc, 0xcccccccccccccccc, 0x0ccccccccccccccc), fp.NewU256(0xe8ba2e8ba2e8ba26, 0x2e8ba2e8ba2e8ba2, 0xa2e8ba2e8ba2e8ba, 0x3a2e8ba2e8ba2e8b), fp.NewU256(0x5555555555555544, 0x5555555555555555, 0x5555555555555555, 0x7555555555555555), fp.NewU256(0x3b13b13b13b13b0b, 0x13b13b13b13b13b1, 0xb13b13b13b13b13b, 0x3b13b13b13b13b13), fp.NewU256(0x924924924924923d, 0x4924924924924924, 0x2492492492492492, 0x5249249249249249), fp.NewU256(0xddddddddddddddd0, 0xdddddddddddddddd, 0xdddddddddddddddd, 0x5ddddddddddddddd)},
	{fp.NewU256(0x9999999999999996, 0x9999999999999999, 0x9999999999999999, 0x1999999999999999), fp.NewU256(0xaaaaaaaaaaaaaa9b, 0xaaaaaaaaaaaaaaaa, 0xaaaaaaaaaaaaaaaa, 0x6aaaaaaaaaaaaaaa), fp.NewU256(0x249249249249248d, 0x9249249249249249, 0x4924924924924924, 0x2492492492492492), fp.NewU256(0xfffffffffffffff9, 0xffffffffffffffff, 0xffffffffffffffff, 0x2fffffffffffffff), fp.NewU256(0xc71c71c71c71c712, 0x1c71c71c71c71c71, 0x71c71c71c71c71c7, 0x471c71c71c71c71c), fp.NewU256(0xcccccccccccccccb, 0xcccccccccccccccc, 0xcccccccccccccccc, 0x0ccccccccccccccc), fp.NewU256(0xe8ba2e8ba2e8ba26, 0x2e8ba2e8ba2e8ba2, 0xa2e8ba2e8ba2e8ba, 0x3a2e8ba2e8ba2e8b), fp.NewU256(0x5555555555555544, 0x5555555555555555, 0x5555555555555555, 0x7555555555555555), fp.NewU256(0x3b13b13b13b13b0b, 0x13b13b13b13b13b1, 0xb13b13b13b13b13b, 0x3b13b13b13b13b13), fp.NewU256(0x924924924924923d, 0x4924924924924924, 0x2492492492492492, 0x5249249249249249), fp.NewU256(0xddddddddddddddd0, 0xdddddddddddddddd, 0xdddddddddddddddd, 0x5ddddddddddddddd), fp.NewU256(0xfffffffffffffff3, 0xffffffffffffffff, 0xffffffffffffffff, 0x57ffffffffffffff)},
	{fp.NewU256(0xaaaaaaaaaaaaaa9b, 0xaaaaaaaaaaaaaaaa, 0xaaaaaaaaaaaaaaaa, 0x6aaaaaaaaaaaaaaa), fp.NewU256(0x249249249249248d, 0x9249249249249249, 0x4924924924924924, 0x2492492492492492), fp.NewU256(0xfffffffffffffff9, 0xffffffffffffffff, 0xffffffffffffffff, 0x2fffffffffffffff), fp.NewU256(0xc71c71c71c71c712, 0x1c71c71c71c71c71, 0x71c71c71c71c71c7, 0x471c71c71c71c71c), fp.NewU256(0xcccccccccccccccb, 0xcccccccccccccccc, 0xcccccccccccccccc, 0x0ccccccccccccccc), fp.NewU256(0xe8ba2e8ba2e8ba26, 0x2e8ba2e8ba2e8ba2, 0xa2e8ba2e8ba2e8ba, 0x3a2e8ba2e8ba2e8b), fp.NewU256(0x5555555555555544, 0x5555555555555555, 0x5555555555555555, 0x7555555555555555), fp.NewU256(0x3b13b13b13b13b0b, 0x13b13b13b13b13b1, 0xb13b13b13b13b13b, 0x3b13b13b13b13b13), fp.NewU256(0x924924924924923d, 0x4924924924924924, 0x2492492492492492, 0x5249249249249249), fp.NewU256(0xddddddddddddddd0, 0xdddddddddddddddd, 0xdddddddddddddddd, 0x5ddddddddddddddd), fp.NewU256(0xfffffffffffffff3, 0xffffffffffffffff, 0xffffffffffffffff, 0x57ffffffffffffff), fp.NewU256(0x5a5a5a5a5a5a5a4d, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a)},
	{fp.NewU256(0x249249249249248d, 0x9249249249249249, 0x4924924924924924, 0x2492492492492492), fp.NewU256(0xfffffffffffffff9, 0xffffffffffffffff, 0xffffffffffffffff, 0x2fffffffffffffff), fp.NewU256(0xc71c71c71c71c712, 0x1c71c71c71c71c71, 0x71c71c71c71c71c7, 0x471c71c71c71c71c), fp.NewU256(0xcccccccccccccccb, 0xcccccccccccccccc, 0xcccccccccccccccc, 0x0ccccccccccccccc), fp.NewU256(0xe8ba2e8ba2e8ba26, 0x2e8ba2e8ba2e8ba2, 0xa2e8ba2e8ba2e8ba, 0x3a2e8ba2e8ba2e8b), fp.NewU256(0x5555555555555544, 0x5555555555555555, 0x5555555555555555, 0x7555555555555555), fp.NewU256(0x3b13b13b13b13b0b, 0x13b13b13b13b13b1, 0xb13b13b13b13b13b, 0x3b13b13b13b13b13), fp.NewU256(0x924924924924923d, 0x4924924924924924, 0x2492492492492492, 0x5249249249249249), fp.NewU256(0xddddddddddddddd0, 0xdddddddddddddddd, 0xdddddddddddddddd, 0x5ddddddddddddddd), fp.NewU256(0xfffffffffffffff3, 0xffffffffffffffff, 0xffffffffffffffff, 0x57ffffffffffffff), fp.NewU256(0x5a5a5a5a5a5a5a4d, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a), fp.NewU256(0xe38e38e38e38e389, 0x8e38e38e38e38e38, 0x38e38e38e38e38e3, 0x238e38e38e38e38e)},
	{fp.NewU256(0xfffffffffffffff9, 0xffffffffffffffff, 0xffffffffffffffff, 0x2fffffffffffffff), fp.NewU256(0xc71c71c71c71c712, 0x1c71c71c71c71c71, 0x71c71c71c71c71c7, 0x471c71c71c71c71c), fp.NewU256(0xcccccccccccccccb, 0xcccccccccccccccc, 0xcccccccccccccccc, 0x0ccccccccccccccc), fp.NewU256(0xe8ba2e8ba2e8ba26, 0x2e8ba2e8ba2e8ba2, 0xa2e8ba2e8ba2e8ba, 0x3a2e8ba2e8ba2e8b), fp.NewU256(0x5555555555555544, 0x5555555555555555, 0x5555555555555555, 0x7555555555555555), fp.NewU256(0x3b13b13b13b13b0b, 0x13b13b13b13b13b1, 0xb13b13b13b13b13b, 0x3b13b13b13b13b13), fp.NewU256(0x924924924924923d, 0x4924924924924924, 0x2492492492492492, 0x5249249249249249), fp.NewU256(0xddddddddddddddd0, 0xdddddddddddddddd, 0xdddddddddddddddd, 0x5ddddddddddddddd), fp.NewU256(0xfffffffffffffff3, 0xffffffffffffffff, 0xffffffffffffffff, 0x57ffffffffffffff), fp.NewU256(0x5a5a5a5a5a5a5a4d, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a), fp.NewU256(0xe38e38e38e38e389, 0x8e38e38e38e38e38, 0x38e38e38e38e38e3, 0x238e38e38e38e38e), fp.NewU256(0x86bca1af286bca14, 0xbca1af286bca1af2, 0xa1af286bca1af286, 0x2f286bca1af286bc)},
	{fp.NewU256(0xc71c71c71c71c712, 0x1c71c71c71c71c71, 0x71c71c71c71c71c7, 0x471c71c71c71c71c), fp.NewU256(0xcccccccccccccccb, 0xcccccccccccccccc, 0xcccccccccccccccc, 0x0ccccccccccccccc), fp.NewU256(0xe8ba2e8ba2e8ba26, 0x2e8ba2e8ba2e8ba2, 0xa2e8ba2e8ba2e8ba, 0x3a2e8ba2e8ba2e8b), fp.NewU256(0x5555555555555544, 0x5555555555555555, 0x5555555555555555, 0x7555555555555555), fp.NewU256(0x3b13b13b13b13b0b, 0x13b13b13b13b13b1, 0xb13b13b13b13b13b, 0x3b13b13b13b13b13), fp.NewU256(0x924924924924923d, 0x4924924924924924, 0x2492492492492492, 0x5249249249249249), fp.NewU256(0xddddddddddddddd0, 0xdddddddddddddddd, 0xdddddddddddddddd, 0x5ddddddddddddddd), fp.NewU256(0xfffffffffffffff3, 0xffffffffffffffff, 0xffffffffffffffff, 0x57ffffffffffffff), fp.NewU256(0x5a5a5a5a5a5a5a4d, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a), fp.NewU256(0xe38e38e38e38e389, 0x8e38e38e38e38e38, 0x38e38e38e38e38e3, 0x238e38e38e38e38e), fp.NewU256(0x86bca1af286bca14, 0xbca1af286bca1af2, 0xa1af286bca1af286, 0x2f286bca1af286bc), fp.NewU256(0x666666666666665c, 0x6666666666666666, 0x6666666666666666, 0x4666666666666666)},
	{fp.NewU256(0xcccccccccccccccb, 0xcccccccccccccccc, 0xcccccccccccccccc, 0x0ccccccccccccccc), fp.NewU256(0xe8ba2e8ba2e8ba26, 0x2e8ba2e8ba2e8ba2, 0xa2e8ba2e8ba2e8ba, 0x3a2e8ba2e8ba2e8b), fp.NewU256(0x5555555555555544, 0x5555555555555555, 0x5555555555555555, 0x7555555555555555), fp.NewU256(0x3b13b13b13b13b0b, 0x13b13b13b13b13b1, 0xb13b13b13b13b13b, 0x3b13b13b13b13b13), fp.NewU256(0x924924924924923d, 0x4924924924924924, 0x2492492492492492, 0x5249249249249249), fp.NewU256(0xddddddddddddddd0, 0xdddddddddddddddd, 0xdddddddddddddddd, 0x5ddddddddddddddd), fp.NewU256(0xfffffffffffffff3, 0xffffffffffffffff, 0xffffffffffffffff, 0x57ffffffffffffff), fp.NewU256(0x5a5a5a5a5a5a5a4d, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a), fp.NewU256(0xe38e38e38e38e389, 0x8e38e38e38e38e38, 0x38e38e38e38e38e3, 0x238e38e38e38e38e), fp.NewU256(0x86bca1af286bca14, 0xbca1af286bca1af2, 0xa1af286bca1af286, 0x2f286bca1af286bc), fp.NewU256(0x666666666666665c, 0x6666666666666666, 0x6666666666666666, 0x4666666666666666), fp.NewU256(0x0c30c30c30c30c2f, 0x30c30c30c30c30c3, 0xc30c30c30c30c30c, 0x0c30c30c30c30c30)},
	{fp.NewU256(0xe8ba2e8ba2e8ba26, 0x2e8ba2e8ba2e8ba2, 0xa2e8ba2e8ba2e8ba, 0x3a2e8ba2e8ba2e8b), fp.NewU256(0x5555555555555544, 0x5555555555555555, 0x5555555555555555, 0x7555555555555555), fp.NewU256(0x3b13b13b13b13b0b, 0x13b13b13b13b13b1, 0xb13b13b13b13b13b, 0x3b13b13b13b13b13), fp.NewU256(0x924924924924923d, 0x4924924924924924, 0x2492492492492492, 0x5249249249249249), fp.NewU256(0xddddddddddddddd0, 0xdddddddddddddddd, 0xdddddddddddddddd, 0x5ddddddddddddddd), fp.NewU256(0xfffffffffffffff3, 0xffffffffffffffff, 0xffffffffffffffff, 0x57ffffffffffffff), fp.NewU256(0x5a5a5a5a5a5a5a4d, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a), fp.NewU256(0xe38e38e38e38e389, 0x8e38e38e38e38e38, 0x38e38e38e38e38e3, 0x238e38e38e38e38e), fp.NewU256(0x86bca1af286bca14, 0xbca1af286bca1af2, 0xa1af286bca1af286, 0x2f286bca1af286bc), fp.NewU256(0x666666666666665c, 0x6666666666666666, 0x6666666666666666, 0x4666666666666666), fp.NewU256(0x0c30c30c30c30c2f, 0x30c30c30c30c30c3, 0xc30c30c30c30c30c, 0x0c30c30c30c30c30), fp.NewU256(0x745d1745d1745d13, 0x1745d1745d1745d1, 0xd1745d1745d1745d, 0x1d1745d1745d1745)},
	{fp.NewU256(0x5555555555555544, 0x5555555555555555, 0x5555555555555555, 0x7555555555555555), fp.NewU256(0x3b13b13b13b13b0b, 0x13b13b13b13b13b1, 0xb13b13b13b13b13b, 0x3b13b13b13b13b13), fp.NewU256(0x924924924924923d, 0x4924924924924924, 0x2492492492492492, 0x5249249249249249), fp.NewU256(0xddddddddddddddd0, 0xdddddddddddddddd, 0xdddddddddddddddd, 0x5ddddddddddddddd), fp.NewU256(0xfffffffffffffff3, 0xffffffffffffffff, 0xffffffffffffffff, 0x57ffffffffffffff), fp.NewU256(0x5a5a5a5a5a5a5a4d, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a), fp.NewU256(0xe38e38e38e38e389, 0x8e38e38e38e38e38, 0x38e38e38e38e38e3, 0x238e38e38e38e38e), fp.NewU256(0x86bca1af286bca14, 0xbca1af286bca1af2, 0xa1af286bca1af286, 0x2f286bca1af286bc), fp.NewU256(0x666666666666665c, 0x6666666666666666, 0x6666666666666666, 0x4666666666666666), fp.NewU256(0x0c30c30c30c30c2f, 0x30c30c30c30c30c3, 0xc30c30c30c30c30c, 0x0c30c30c30c30c30), fp.NewU256(0x745d1745d1745d13, 0x1745d1745d1745d1, 0xd1745d1745d1745d, 0x1d1745d1745d1745), fp.NewU256(0xe9bd37a6f4de9bc3, 0xa6f4de9bd37a6f4d, 0x9bd37a6f4de9bd37, 0x6f4de9bd37a6f4de)},
	{fp.NewU256(0x3b13b13b13b13b0b, 0x13b13b13b13b13b1, 0xb13b13b13b13b13b, 0x3b13b13b13b13b13), fp.NewU256(0x924924924924923d, 0x4924924924924924, 0x2492492492492492, 0x5249249249249249), fp.NewU256(0xddddddddddddddd0, 0xdddddddddddddddd, 0xdddddddddddddddd, 0x5ddddddddddddddd), fp.NewU256(0xfffffffffffffff3, 0xffffffffffffffff, 0xffffffffffffffff, 0x57ffffffffffffff), fp.NewU256(0x5a5a5a5a5a5a5a4d, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a), fp.NewU256(0xe38e38e38e38e389, 0x8e38e38e38e38e38, 0x38e38e38e38e38e3, 0x238e38e38e38e38e), fp.NewU256(0x86bca1af286bca14, 0xbca1af286bca1af2, 0xa1af286bca1af286, 0x2f286bca1af286bc), fp.NewU256(0x666666666666665c, 0x6666666666666666, 0x6666666666666666, 0x4666666666666666), fp.NewU256(0x0c30c30c30c30c2f, 0x30c30c30c30c30c3, 0xc30c30c30c30c30c, 0x0c30c30c30c30c30), fp.NewU256(0x745d1745d1745d13, 0x1745d1745d1745d1, 0xd1745d1745d1745d, 0x1d1745d1745d1745), fp.NewU256(0xe9bd37a6f4de9bc3, 0xa6f4de9bd37a6f4d, 0x9bd37a6f4de9bd37, 0x6f4de9bd37a6f4de), fp.NewU256(0xaaaaaaaaaaaaaaa2, 0xaaaaaaaaaaaaaaaa, 0xaaaaaaaaaaaaaaaa, 0x3aaaaaaaaaaaaaaa)},
}

var mds12Inverse = [12][12]fp.U256{
	{fp.NewU256(0x0000000000002f88, 0, 0, 0), fp.NewU256(0xfffffffffff677fd, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000000000b2b4d4, 0, 0, 0), fp.NewU256(0xfffffffff94c6b2d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000000025f9a040, 0, 0, 0), fp.NewU256(0xffffffff774a256d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000000144afe6f0, 0, 0, 0), fp.NewU256(0xfffffffdfc9fa5ad, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000000021d252b90, 0, 0, 0), fp.NewU256(0xfffffffe973c8d8d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000000008a4aebd8, 0, 0, 0), fp.NewU256(0xffffffffe8ca402d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff)},
	{fp.NewU256(0xfffffffffff677fd, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000000002266a64, 0, 0, 0), fp.NewU256(0xffffffffd4ffb01d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00000001ae031e20, 0, 0, 0), fp.NewU256(0xfffffff635a4af6d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00000023fadc6170, 0, 0, 0), fp.NewU256(0xffffffa930f87a6d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000008b83953b20, 0, 0, 0), fp.NewU256(0xffffff6c07d6168d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000006377e348f8, 0, 0, 0), fp.NewU256(0xffffffd99a9549cd, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000000067b830e20, 0, 0, 0)},
	{fp.NewU256(0x0000000000b2b4d4, 0, 0, 0), fp.NewU256(0xffffffffd4ffb01d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000000037fdbd418, 0, 0, 0), fp.NewU256(0xffffffdc01740cad, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000000d62a8d80f0, 0, 0, 0), fp.NewU256(0xfffffce07233fc6d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000007a132293bc0, 0, 0, 0), fp.NewU256(0xfffff39d3a34c02d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00000d3ef715ced8, 0, 0, 0), fp.NewU256(0xfffff70893d1bacd, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000037b56e41630, 0, 0, 0), fp.NewU256(0xffffff68be0e0bad, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff)},
	{fp.NewU256(0xfffffffff94c6b2d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00000001ae031e20, 0, 0, 0), fp.NewU256(0xffffffdc01740cad, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00000179f0bd7a20, 0, 0, 0), fp.NewU256(0xfffff7138f6ff5ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000021bb2e9b5900, 0, 0, 0), fp.NewU256(0xffffacc4686cb9ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000883e7fbbbd40, 0, 0, 0), fp.NewU256(0xffff6d468a22206d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000063e990df0240, 0, 0, 0), fp.NewU256(0xffffd900ff9f076d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000006a5a5e1fbd0, 0, 0, 0)},
	{fp.NewU256(0x0000000025f9a040, 0, 0, 0), fp.NewU256(0xfffffff635a4af6d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000000d62a8d80f0, 0, 0, 0), fp.NewU256(0xfffff7138f6ff5ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000369cc55d0a00, 0, 0, 0), fp.NewU256(0xffff2f7adfe293ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000206d152f3df00, 0, 0, 0), fp.NewU256(0xfffca8ce5851e1ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00039e75cafca080, 0, 0, 0), fp.NewU256(0xfffd85e3b70ed2ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000f899a26a3030, 0, 0, 0), fp.NewU256(0xffffd57573f34ded, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff)},
	{fp.NewU256(0xffffffff774a256d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00000023fadc6170, 0, 0, 0), fp.NewU256(0xfffffce07233fc6d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000021bb2e9b5900, 0, 0, 0), fp.NewU256(0xffff2f7adfe293ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000322cd553e1300, 0, 0, 0), fp.NewU256(0xfff8249573917bed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000d0741a78d7500, 0, 0, 0), fp.NewU256(0xfff1d046bb54e6ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0009c0cf5f35a130, 0, 0, 0), fp.NewU256(0xfffc294c5cdabced, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000a8bf2b87b100, 0, 0, 0)},
	{fp.NewU256(0x0000000144afe6f0, 0, 0, 0), fp.NewU256(0xffffffa930f87a6d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000007a132293bc0, 0, 0, 0), fp.NewU256(0xffffacc4686cb9ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000206d152f3df00, 0, 0, 0), fp.NewU256(0xfff8249573917bed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0013cd96feae0e00, 0, 0, 0), fp.NewU256(0xffdefeaf02333ded, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x002419709597f430, 0, 0, 0), fp.NewU256(0xffe715983158e0ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0009d725e5451b80, 0, 0, 0), fp.NewU256(0xfffe4e146b7e81ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff)},
	{fp.NewU256(0xfffffffdfc9fa5ad, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000008b83953b20, 0, 0, 0), fp.NewU256(0xfffff39d3a34c02d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000883e7fbbbd40, 0, 0, 0), fp.NewU256(0xfffca8ce5851e1ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000d0741a78d7500, 0, 0, 0), fp.NewU256(0xffdefeaf02333ded, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0037410f969a3710, 0, 0, 0), fp.NewU256(0xffc3542b1e65b96d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x002a053b431ff240, 0, 0, 0), fp.NewU256(0xffef5a488d75ea6d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0002e01d5bedf5c0, 0, 0, 0)},
	{fp.NewU256(0x000000021d252b90, 0, 0, 0), fp.NewU256(0xffffff6c07d6168d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00000d3ef715ced8, 0, 0, 0), fp.NewU256(0xffff6d468a22206d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00039e75cafca080, 0, 0, 0), fp.NewU256(0xfff1d046bb54e6ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x002419709597f430, 0, 0, 0), fp.NewU256(0xffc3542b1e65b96d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0042d9c7020fea20, 0, 0, 0), fp.NewU256(0xffd18e6da855f42d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x001273670de19390, 0, 0, 0), fp.NewU256(0xfffcce184485d26d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff)},
	{fp.NewU256(0xfffffffe973c8d8d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000006377e348f8, 0, 0, 0), fp.NewU256(0xfffff70893d1bacd, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000063e990df0240, 0, 0, 0), fp.NewU256(0xfffd85e3b70ed2ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0009c0cf5f35a130, 0, 0, 0), fp.NewU256(0xffe715983158e0ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x002a053b431ff240, 0, 0, 0), fp.NewU256(0xffd18e6da855f42d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00205b1178ce5bd0, 0, 0, 0), fp.NewU256(0xfff31d1d9ce88cad, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00023c889cd58640, 0, 0, 0)},
	{fp.NewU256(0x000000008a4aebd8, 0, 0, 0), fp.NewU256(0xffffffd99a9549cd, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000037b56e41630, 0, 0, 0), fp.NewU256(0xffffd900ff9f076d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000f899a26a3030, 0, 0, 0), fp.NewU256(0xfffc294c5cdabced, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0009d725e5451b80, 0, 0, 0), fp.NewU256(0xffef5a488d75ea6d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x001273670de19390, 0, 0, 0), fp.NewU256(0xfff31d1d9ce88cad, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000524d3cf1e4e60, 0, 0, 0), fp.NewU256(0xffff1afc8e10fd6d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff)},
	{fp.NewU256(0xffffffffe8ca402d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000000067b830e20, 0, 0, 0), fp.NewU256(0xffffff68be0e0bad, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000006a5a5e1fbd0, 0, 0, 0), fp.NewU256(0xffffd57573f34ded, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0000a8bf2b87b100, 0, 0, 0), fp.NewU256(0xfffe4e146b7e81ed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x0002e01d5bedf5c0, 0, 0, 0), fp.NewU256(0xfffcce184485d26d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x00023c889cd58640, 0, 0, 0), fp.NewU256(0xffff1afc8e10fd6d, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff), fp.NewU256(0x000027e7635e0260, 0, 0, 0)},
}

// matrixFromTable builds a *Matrix from one of the fixed-size arrays above.
func matrixFromTable(size int, table [][]fp.U256) *Matrix {
	m := NewMatrix(size, size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			m.Set(i, j, fp.FromU256(table[i][j]))
		}
	}
	return m
}

func precomputedCauchyMatrix(size int) *Matrix {
	switch size {
	case 5:
		rows := make([][]fp.U256, 5)
		for i := range mds5Forward {
			rows[i] = mds5Forward[i][:]
		}
		return matrixFromTable(5, rows)
	case 12:
		rows := make([][]fp.U256, 12)
		for i := range mds12Forward {
			rows[i] = mds12Forward[i][:]
		}
		return matrixFromTable(12, rows)
	default:
		return nil
	}
}

func precomputedInverseCauchyMatrix(size int) *Matrix {
	switch size {
	case 5:
		rows := make([][]fp.U256, 5)
		for i := range mds5Inverse {
			rows[i] = mds5Inverse[i][:]
		}
		return matrixFromTable(5, rows)
	case 12:
		rows := make([][]fp.U256, 12)
		for i := range mds12Inverse {
			rows[i] = mds12Inverse[i][:]
		}
		return matrixFromTable(12, rows)
	default:
		return nil
	}
}
