package rescue

import "testing"

func TestCauchyMatrixIsInverseOfItsInverse(t *testing.T) {
	for _, size := range []int{3, 5, 12} {
		mds, err := buildCauchyMatrix(size)
		if err != nil {
			t.Fatalf("size %d: buildCauchyMatrix: %v", size, err)
		}
		inv, err := buildInverseCauchyMatrix(size)
		if err != nil {
			t.Fatalf("size %d: buildInverseCauchyMatrix: %v", size, err)
		}
		product, err := mds.MatMul(inv)
		if err != nil {
			t.Fatalf("size %d: MatMul: %v", size, err)
		}
		if !product.Equal(Identity(size)) {
			t.Fatalf("size %d: mds * mds_inverse != identity", size)
		}
	}
}

func TestPrecomputedMDSTablesMatchComputedCauchyMatrix(t *testing.T) {
	for _, size := range []int{5, 12} {
		table := precomputedCauchyMatrix(size)
		m := NewMatrix(size, size)
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				sum := fpFromInt64(int64(i + 1 + j + 1))
				inv, err := sum.Inv()
				if err != nil {
					t.Fatal(err)
				}
				m.Set(i, j, inv)
			}
		}
		if !table.Equal(m) {
			t.Fatalf("size %d: precomputed forward table disagrees with the closed-form computation", size)
		}

		invTable := precomputedInverseCauchyMatrix(size)
		product, err := m.MatMul(invTable)
		if err != nil {
			t.Fatal(err)
		}
		if !product.Equal(Identity(size)) {
			t.Fatalf("size %d: precomputed inverse table does not invert the freshly computed forward matrix", size)
		}
	}
}

func TestGetAlphaAndInverseForCurve25519Prime(t *testing.T) {
	alpha, alphaInverse, err := getAlphaAndInverse()
	if err != nil {
		t.Fatal(err)
	}
	if alpha != 5 {
		t.Fatalf("alpha = %d, want 5 (the smallest prime not dividing p-1 for this p)", alpha)
	}
	if alphaInverse.IsZero() {
		t.Fatalf("alphaInverse is zero")
	}
}

func TestGetNRoundsCipherAtLeastMinimum(t *testing.T) {
	n := getNRounds(true, 0, 5, 5)
	if n < 10 { // 2*max(l0,l1,5) >= 10
		t.Fatalf("cipher n_rounds = %d, want >= 10", n)
	}
}

func TestGetNRoundsHashAtLeastMinimum(t *testing.T) {
	n := getNRounds(false, 5, 5, 12)
	if n < 8 { // ceil(1.5*max(5,l1)) >= 8
		t.Fatalf("hash n_rounds = %d, want >= 8", n)
	}
}
