package artifact

import "fmt"

// RandomForest is the persisted classifier: an ensemble of binary decision
// trees exported from the training run, predicting by majority vote. It
// holds no mutable state after construction.
type RandomForest struct {
	typeName    string
	numFeatures int
	trees       []decisionTree
}

// decisionTree stores a tree in flat node arrays. Internal nodes carry a
// feature index and threshold; leaves have feature -1 and a class.
type decisionTree struct {
	feature   []int
	threshold []float64
	left      []int
	right     []int
	class     []int
}

// forestFile is the on-disk JSON shape of the model artifact.
type forestFile struct {
	Type        string     `json:"type"`
	NumFeatures int        `json:"n_features"`
	Trees       []treeSpec `json:"trees"`
}

type treeSpec struct {
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	LeafClass     []int     `json:"leaf_class"`
}

func newRandomForest(f forestFile) (*RandomForest, error) {
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("model has no trees")
	}
	if f.NumFeatures <= 0 {
		return nil, fmt.Errorf("model declares %d features", f.NumFeatures)
	}

	trees := make([]decisionTree, len(f.Trees))
	for i, t := range f.Trees {
		n := len(t.Feature)
		if n == 0 || len(t.Threshold) != n || len(t.ChildrenLeft) != n || len(t.ChildrenRight) != n || len(t.LeafClass) != n {
			return nil, fmt.Errorf("tree %d has inconsistent node arrays", i)
		}
		trees[i] = decisionTree{
			feature:   t.Feature,
			threshold: t.Threshold,
			left:      t.ChildrenLeft,
			right:     t.ChildrenRight,
			class:     t.LeafClass,
		}
	}

	typeName := f.Type
	if typeName == "" {
		typeName = "RandomForestClassifier"
	}

	return &RandomForest{
		typeName:    typeName,
		numFeatures: f.NumFeatures,
		trees:       trees,
	}, nil
}

// Predict returns one class per row by majority vote across the ensemble.
// Ties break toward the lower class.
func (rf *RandomForest) Predict(rows [][]float64) ([]int, error) {
	classes := make([]int, len(rows))
	for i, row := range rows {
		if len(row) != rf.numFeatures {
			return nil, fmt.Errorf("row %d has %d features, model expects %d", i, len(row), rf.numFeatures)
		}

		votes := make(map[int]int, 2)
		for _, t := range rf.trees {
			votes[t.predict(row)]++
		}

		best, bestVotes := 0, -1
		for class, n := range votes {
			if n > bestVotes || (n == bestVotes && class < best) {
				best, bestVotes = class, n
			}
		}
		classes[i] = best
	}
	return classes, nil
}

// predict walks the tree for one row. A NaN feature fails the <= test and
// descends right, the same branch an out-of-range value takes.
func (t decisionTree) predict(row []float64) int {
	node := 0
	for t.feature[node] >= 0 {
		if row[t.feature[node]] <= t.threshold[node] {
			node = t.left[node]
		} else {
			node = t.right[node]
		}
	}
	return t.class[node]
}

// TypeName reports the declared type of the persisted model.
func (rf *RandomForest) TypeName() string {
	return rf.typeName
}

// FeatureCount returns the number of input features the model expects.
func (rf *RandomForest) FeatureCount() int {
	return rf.numFeatures
}
