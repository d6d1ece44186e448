// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// PracticeRecord is the predicate function for practicerecord builders.
type PracticeRecord func(*sql.Selector)

// PracticeSession is the predicate function for practicesession builders.
type PracticeSession func(*sql.Selector)

// UserConcept is the predicate function for userconcept builders.
type UserConcept func(*sql.Selector)
