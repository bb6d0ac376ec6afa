package vo

// Bucket range of element counts per page, From inclusive, To exclusive
type Bucket struct {
	Name string
	From int
	To   int
}

type BucketList []Bucket

func (b Bucket) Contains(elements int) bool {
	return elements >= b.From && elements < b.To
}

func GetBucketList() BucketList {
	return BucketList{
		Bucket{
			Name: "blank page",
			From: 0,
			To:   1,
		},
		Bucket{
			Name: "minimal",
			From: 1,
			To:   3,
		},
		Bucket{
			Name: "sparse",
			From: 3,
			To:   6,
		},
		Bucket{
			Name: "regular",
			From: 6,
			To:   11,
		},
		Bucket{
			Name: "busy",
			From: 11,
			To:   21,
		},
		Bucket{
			Name: "crowded, check the annotation",
			From: 21,
			To:   int(^uint(0) >> 1),
		},
	}
}
