// Package ecma models the ECMA XML documentation files docsweep repairs.
//
// Each file documents one type. The root Type element carries a
// TypeSignature child with Language="DocId" whose Value is the type's
// stable identifier. Members live under a Members child; each Member may
// carry its own MemberSignature DocId declaration and a Docs node holding
// the documentation body:
//
//	<Type Name="String" FullName="System.String">
//	  <TypeSignature Language="DocId" Value="T:System.String" />
//	  <Members>
//	    <Member MemberName="Trim">
//	      <MemberSignature Language="DocId" Value="M:System.String.Trim" />
//	      <Docs>
//	        <summary>Removes leading and trailing whitespace.</summary>
//	      </Docs>
//	    </Member>
//	  </Members>
//	</Type>
//
// All structure is optional: a Member without a signature or Docs node is
// valid and every accessor reports absence instead of failing.
//
// # Rewrite Contract
//
// Saved files are UTF-8 without a byte-order mark, carry no XML
// declaration, use two-space indentation with LF line endings, and end in
// exactly one trailing newline. Writes go to a temporary file in the same
// directory which then atomically replaces the original.
package ecma
