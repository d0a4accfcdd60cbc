package errCode

type ErrCode int

const (
	UNKNOWN ErrCode = iota
	EMPTY_VALUE
	INVALID_VALUE
	INVALID_BOUNDS            // 上界不大于下界
	INVALID_PART_COUNT        // 分区数量过小
	INVALID_OBSERVATION_COUNT // 观测序列长度 <= 1
	NON_MONOTONIC_SEQUENCE    // 边界序列非严格递增
	INVALID_INDEX             // 区间下标越界
	EMPTY_POPULATION          // 总频数为零
	DEGENERATE_HISTOGRAM      // 区间数为零
)

func (c ErrCode) String() string {
	switch c {
	case EMPTY_VALUE:
		return "EMPTY_VALUE"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case INVALID_BOUNDS:
		return "INVALID_BOUNDS"
	case INVALID_PART_COUNT:
		return "INVALID_PART_COUNT"
	case INVALID_OBSERVATION_COUNT:
		return "INVALID_OBSERVATION_COUNT"
	case NON_MONOTONIC_SEQUENCE:
		return "NON_MONOTONIC_SEQUENCE"
	case INVALID_INDEX:
		return "INVALID_INDEX"
	case EMPTY_POPULATION:
		return "EMPTY_POPULATION"
	case DEGENERATE_HISTOGRAM:
		return "DEGENERATE_HISTOGRAM"
	default:
		return "UNKNOWN"
	}
}
