package cache

// LinkedListNode carries one cache entry; key is kept so eviction from the
// tail can drop the map entry without a scan.
type LinkedListNode struct {
	Prev  *LinkedListNode
	Next  *LinkedListNode
	Key   string
	Value interface{}
}

// DoubleLinkedList keeps entries in recency order between two sentinels.
type DoubleLinkedList struct {
	len  int64
	Head *LinkedListNode
	Tail *LinkedListNode
}

type List = DoubleLinkedList

func NewList() *List {
	list := &DoubleLinkedList{
		Head: &LinkedListNode{},
		Tail: &LinkedListNode{},
	}
	list.Head.Next = list.Tail
	list.Tail.Prev = list.Head
	return list
}

func (d *List) Len() int64 {
	return d.len
}

func (d *List) PushFront(key string, value interface{}) *LinkedListNode {
	d.len++
	node := &LinkedListNode{Key: key, Value: value}
	node.Prev = d.Head
	node.Next = d.Head.Next
	d.Head.Next = node
	node.Next.Prev = node
	return node
}

// Back returns the least recently used node, nil when empty.
func (d *List) Back() *LinkedListNode {
	if d.len == 0 {
		return nil
	}
	return d.Tail.Prev
}

func (d *List) Remove(n *LinkedListNode) {
	n.Prev.Next = n.Next
	n.Next.Prev = n.Prev
	n.Next = nil
	n.Prev = nil
	d.len--
}

func (d *List) toHead(pv *LinkedListNode) {
	if pv == d.Head.Next {
		return
	}
	pv.Prev.Next = pv.Next
	pv.Next.Prev = pv.Prev

	sp := d.Head.Next
	pv.Next = sp
	pv.Prev = d.Head
	d.Head.Next = pv
	sp.Prev = pv
}
