package mpmul_test

import (
	"testing"

	"github.com/agbru/mulcheck/internal/mpmul"
	"github.com/agbru/mulcheck/internal/mpmul/mocks"
	"github.com/golang/mock/gomock"
)

func TestSchoolbook_CallSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMachine(ctrl)

	out := mpmul.Out
	gomock.InOrder(
		m.EXPECT().AddCarry(out(0), mpmul.Zero, mpmul.Zero, false),
		m.EXPECT().AddCarry(out(1), mpmul.Zero, mpmul.Zero, false),
		m.EXPECT().MulWide(mpmul.P0, 0, 0),
		m.EXPECT().AddCarry(out(0), out(0), mpmul.Lo(mpmul.P0), false),
		m.EXPECT().AddCarry(out(1), out(1), mpmul.Hi(mpmul.P0), true),
	)

	mpmul.Schoolbook{}.Emit(m, 1)
}

func TestSchoolbook_RowMajorOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMachine(ctrl)

	m.EXPECT().AddCarry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	gomock.InOrder(
		m.EXPECT().MulWide(mpmul.P0, 0, 0),
		m.EXPECT().MulWide(mpmul.P0, 0, 1),
		m.EXPECT().MulWide(mpmul.P0, 1, 0),
		m.EXPECT().MulWide(mpmul.P0, 1, 1),
	)

	mpmul.Schoolbook{}.Emit(m, 2)
}

func TestFixedFour_NeverReadsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMachine(ctrl)

	m.EXPECT().MulWide(gomock.Any(), gomock.Any(), gomock.Any()).Times(4)
	m.EXPECT().AddCarry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(7).
		Do(func(dst, x, y mpmul.Loc, _ bool) {
			if x.Kind == mpmul.KindOut || y.Kind == mpmul.KindOut {
				t.Errorf("fixed4 read %v / %v", x, y)
			}
		})

	mpmul.FixedFour{}.Emit(m, 2)
}
